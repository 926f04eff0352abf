package main

import (
	"context"
	"os"
	"time"

	"github.com/delaneyj/bindparty/cmd/codegen/templates"
	"github.com/delaneyj/bindparty/internal/logging"
	"github.com/urfave/cli/v3"
)

const (
	outKey      = "out"
	logLevelKey = "log-level"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed primitive property wrappers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  outKey,
				Usage: "File to write the generated wrappers to",
				Value: "property/primitives_gen.go",
			},
			&cli.StringFlag{
				Name:  logLevelKey,
				Usage: "Minimum level to log",
				Value: "info",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	log, err := logging.New(os.Stderr, cmd.String(logLevelKey))
	if err != nil {
		return err
	}

	start := time.Now()
	out := cmd.String(outKey)
	log.Info().Str("out", out).Int("kinds", len(templates.Kinds)).Msg("codegen started")
	defer func() {
		log.Info().Dur("took", time.Since(start)).Msg("codegen finished")
	}()

	contents, err := templates.Render(templates.Kinds)
	if err != nil {
		return err
	}
	return os.WriteFile(out, contents, 0644)
}
