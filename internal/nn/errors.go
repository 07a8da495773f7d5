package nn

import "fmt"

// ConfigError reports an invalid network or training configuration.
// It is fatal to the run: surfaced immediately, never retried.
type ConfigError struct{ msg string }

func (e ConfigError) Error() string { return e.msg }

// Configf builds a ConfigError from a format string.
func Configf(format string, args ...interface{}) ConfigError {
	return ConfigError{msg: fmt.Sprintf(format, args...)}
}
