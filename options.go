package volctl

import "go.uber.org/zap"

// Option configures an AudioOutputDevice during GetDefault.
type Option func(*AudioOutputDevice)

// WithLogger sets the logger used for debug output. The default is a no-op
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *AudioOutputDevice) {
		d.logger = logger
	}
}
