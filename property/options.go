package property

type config struct {
	bean          any
	name          string
	onInvalidated func()
}

type Option func(*config)

// WithBean records the object owning the property.
func WithBean(bean any) Option {
	return func(c *config) {
		c.bean = bean
	}
}

func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// OnInvalidated runs fn every time the property goes from valid to invalid,
// before any listener is notified.
func OnInvalidated(fn func()) Option {
	return func(c *config) {
		c.onInvalidated = fn
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) describe() string {
	if c.name == "" {
		return "property"
	}
	return "property " + c.name
}
