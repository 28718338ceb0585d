// Package client provides an HTTP client for the DirectAdmin control panel
// API.
//
// The client wraps [github.com/go-resty/resty/v2]. Every command is a single
// HTTP POST with Basic authentication and a URL-encoded form body. Responses
// are returned as received; the client does not interpret status codes or
// bodies and never retries.
//
// # Basic Usage
//
//	c, err := client.New(client.Config{
//	    Username:     "admin",
//	    Password:     "secret",
//	    Host:         "panel.example.com",
//	    Port:         2222,
//	    UseSSL:       true,
//	    FailureEmail: "ops@example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.Execute(ctx, "CMD_API_SHOW_ALL_USERS", map[string]string{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.StatusCode, resp.Body)
//
// # Base URL
//
// If [Config.Host] contains a scheme it is used as the base URL unchanged.
// Otherwise the base URL is built from the scheme selected by
// [Config.UseSSL], the host and [Config.Port].
//
// # Errors
//
// A [*MissingConfigurationError] is returned, before any network activity,
// when a required field is absent. This includes calls without form data.
// A [*TransportError] is returned when a request was sent but no response
// was received. Use [errors.As] to tell them apart.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output.
package client
