package tz

import "github.com/Fuabioo/tzkit/internal/security"

// Option configures a Database.
type Option func(*options)

type options struct {
	limits security.Limits
}

func newOptions(opts []Option) options {
	o := options{limits: security.DefaultLimits()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLimits sets the limits applied to zoneinfo files and archives.
func WithLimits(limits security.Limits) Option {
	return func(o *options) {
		o.limits = limits
	}
}
