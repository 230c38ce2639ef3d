package lazytake

import (
	"go.llib.dev/lazytake/pkg/logging"
)

// Config holds the optional settings of a View.
type Config struct {
	// Logger receives a debug entry about the selected tier when a View is created.
	// A nil Logger disables logging.
	Logger *logging.Logger
}

// Option configures a View.
// Config itself is an Option that applies its non zero fields.
type Option interface {
	configure(*Config)
}

func (c Config) configure(t *Config) {
	if c.Logger != nil {
		t.Logger = c.Logger
	}
}

type optionFunc func(*Config)

func (fn optionFunc) configure(c *Config) { fn(c) }

// WithLogger sets the logger of the View.
func WithLogger(l *logging.Logger) Option {
	return optionFunc(func(c *Config) { c.Logger = l })
}

func toConfig(opts []Option) Config {
	var c Config
	for _, opt := range opts {
		opt.configure(&c)
	}
	return c
}
