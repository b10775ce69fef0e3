package port

// Fields carries structured data attached to a log line.
type Fields map[string]interface{}

// LoggerPort is the logging contract every adapter of the library uses.
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a new logger with the fields already attached.
	WithFields(fields Fields) LoggerPort
}
