package client

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const maxTimeout = 10 * time.Minute

type Option func(*Options)

type Options struct {
	timeout            time.Duration
	requestLogger      RequestLogger
	requestHeaders     map[string]string
	userAgent          string
	insecureSkipVerify bool
}

func newClientOptions() *Options {
	return &Options{
		requestLogger:  &NoopLogger{},
		requestHeaders: map[string]string{},
		userAgent:      "directadmin-go-client",
	}
}

// WithTimeout sets the overall timeout of a single request. Zero keeps the
// transport default (no timeout).
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every request. Content-Type is always
// application/x-www-form-urlencoded and cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		if strings.TrimSpace(userAgent) != "" {
			o.userAgent = userAgent
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. DirectAdmin
// installs a self-signed certificate by default.
func WithInsecureSkipVerify(skip bool) Option {
	return func(o *Options) {
		o.insecureSkipVerify = skip
	}
}

func (o *Options) Validate() error {
	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.timeout > maxTimeout {
		return fmt.Errorf("timeout must not exceed %v", maxTimeout)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if strings.TrimSpace(o.userAgent) == "" {
		return errors.New("userAgent must not be empty")
	}

	return nil
}
