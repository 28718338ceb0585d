package client

// RequestLogger receives the client's request and transport-error messages.
// Its method set is the one resty expects from a logger, so the same value
// also gets resty's own warnings. Install one with [WithRequestLogger].
//
// Credentials are never passed to the logger by [Client] itself.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger drops every message. [New] uses it unless
// [WithRequestLogger] supplies something else.
type NoopLogger struct{}

func (*NoopLogger) Errorf(string, ...any) {}
func (*NoopLogger) Warnf(string, ...any)  {}
func (*NoopLogger) Debugf(string, ...any) {}
