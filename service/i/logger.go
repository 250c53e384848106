package i

// Logger is the logging surface used by services.
type Logger interface {
	Debug(string)
	Info(string)
	Warn(string)
	Error(string)
}
