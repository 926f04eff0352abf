package logging_test

import (
	"bytes"
	"testing"

	"github.com/delaneyj/bindparty/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltersEvents(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "info")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("width", 10).Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "width=10")
}

func TestUnknownLevel(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "loud")
	assert.ErrorContains(t, err, `parsing log level "loud"`)
}
