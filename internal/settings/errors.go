package settings

import "fmt"

type ConfigErrorKind string

const (
	ErrorFormat       ConfigErrorKind = "format"
	ErrorInvalidKey   ConfigErrorKind = "invalid_key"
	ErrorInvalidValue ConfigErrorKind = "invalid_value"
)

// ConfigError is returned by Store.Edit. The store is left untouched.
type ConfigError struct {
	Kind  ConfigErrorKind
	Input string
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case ErrorFormat:
		return fmt.Sprintf("invalid edit %q: expected KEY=VALUE", e.Input)
	case ErrorInvalidKey:
		return fmt.Sprintf("invalid config key %q", e.Key)
	default:
		return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Key, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// MessageKey is the translation key describing the error to the user.
func (e *ConfigError) MessageKey() string {
	return "config.error." + string(e.Kind)
}
