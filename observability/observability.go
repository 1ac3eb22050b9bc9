// Package observability provides the logging interface injected into
// pagedown components. The library never configures or mutates global
// logging state: callers construct one Logger at startup and pass it in,
// and everything defaults to NopLogger when they don't.
package observability

// Logger is a leveled, structured logger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a typed key/value pair attached to a log entry.
type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

// String creates a string field.
func String(key, value string) Field { return stringField{key, value} }

// Int creates an int field.
func Int(key string, value int) Field { return intField{key, value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return float64Field{key, value} }

// Error creates an error field.
func Error(key string, err error) Field { return errorField{key, err} }

// NopLogger discards everything. It is the default for all components.
type NopLogger struct{}

// Debug discards the entry.
func (NopLogger) Debug(string, ...Field) {}

// Info discards the entry.
func (NopLogger) Info(string, ...Field) {}

// Warn discards the entry.
func (NopLogger) Warn(string, ...Field) {}

// Error discards the entry.
func (NopLogger) Error(string, ...Field) {}
