package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

const formContentType = "application/x-www-form-urlencoded"

// Config holds the connection settings of a DirectAdmin server. All fields
// except UseSSL are required.
type Config struct {
	Username string
	Password string

	// Host is either a bare hostname, combined with Port and UseSSL into
	// the base URL, or a full URL with scheme which is used as is.
	Host   string
	Port   int
	UseSSL bool

	// FailureEmail is the address failure reports should go to. The client
	// stores it but never sends anything to it.
	FailureEmail string
}

// CommandRequest is a single API invocation. A nil FormData means no form
// data was supplied; an empty non-nil map is sent as an empty form.
type CommandRequest struct {
	Command  string
	FormData map[string]string
}

// CommandResponse is the raw response of a command. The body is not
// interpreted in any way.
type CommandResponse struct {
	StatusCode int
	Body       string
}

// Client sends commands to the DirectAdmin API. Each call is an independent
// request; the client holds no per-call state.
type Client struct {
	config      Config
	baseURL     string
	options     *Options
	restyClient *resty.Client
}

// New validates cfg and opts and returns a ready to use client. A
// *MissingConfigurationError is returned if a required field of cfg is
// absent.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := checkRequiredOptions(opNew, cfg.optionValues()); err != nil {
		return nil, err
	}

	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	baseURL, err := buildBaseURL(cfg)
	if err != nil {
		return nil, err
	}

	// Redirects are returned to the caller, and no cookies or connections
	// are carried from one call to the next.
	restyClient := resty.New().
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})).
		SetCookieJar(nil).
		SetCloseConnection(true).
		SetLogger(options.requestLogger).
		SetTimeout(options.timeout).
		SetHeader("User-Agent", options.userAgent).
		SetHeaders(options.requestHeaders)

	if options.insecureSkipVerify {
		restyClient.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
	}

	return &Client{
		config:      cfg,
		baseURL:     baseURL,
		options:     options,
		restyClient: restyClient,
	}, nil
}

// Config returns a copy of the configuration the client was created with.
func (c *Client) Config() Config {
	return c.config
}

// BaseURL returns the URL commands are appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute runs command with the given form data. See [Client.Do].
func (c *Client) Execute(ctx context.Context, command string, formData map[string]string) (*CommandResponse, error) {
	return c.Do(ctx, CommandRequest{Command: command, FormData: formData})
}

// Do posts req to the server using HTTP Basic authentication and returns the
// response as received, whatever its status code. A *TransportError is
// returned if no response could be obtained.
//
// A request without form data is rejected with a *MissingConfigurationError
// and no request is sent.
func (c *Client) Do(ctx context.Context, req CommandRequest) (*CommandResponse, error) {
	if c == nil {
		return nil, errors.New("directadmin client is nil")
	}

	if err := checkRequiredOptions(opExecute, map[string]string{"command": req.Command}); err != nil {
		return nil, err
	}

	if req.FormData == nil {
		return nil, &MissingConfigurationError{Fields: []string{"formdata"}}
	}

	target := joinURL(c.baseURL, req.Command)

	form := url.Values{}
	for k, v := range req.FormData {
		form.Set(k, v)
	}

	c.options.requestLogger.Debugf("POST %s", target)

	response, err := c.restyClient.R().
		SetContext(ctx).
		SetBasicAuth(c.config.Username, c.config.Password).
		SetHeader("Content-Type", formContentType).
		SetBody(form.Encode()).
		Post(target)
	if err != nil {
		c.options.requestLogger.Errorf("POST %s failed: %v", target, err)
		return nil, &TransportError{Method: http.MethodPost, URL: target, Err: err}
	}

	c.options.requestLogger.Debugf("POST %s returned %d", target, response.StatusCode())

	return &CommandResponse{
		StatusCode: response.StatusCode(),
		Body:       string(response.Body()),
	}, nil
}

func buildBaseURL(cfg Config) (string, error) {
	host := strings.TrimSpace(cfg.Host)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return "", fmt.Errorf("invalid port %d: must be between 1 and 65535", cfg.Port)
	}

	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err != nil {
			return "", fmt.Errorf("invalid host %q: %w", cfg.Host, err)
		}

		if u.Scheme != "http" && u.Scheme != "https" {
			return "", fmt.Errorf("invalid host %q: unsupported scheme %q", cfg.Host, u.Scheme)
		}

		return strings.TrimRight(host, "/"), nil
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	if _, _, err := net.SplitHostPort(host); err == nil {
		return "", fmt.Errorf("invalid host %q: use Port instead of a port in the host", cfg.Host)
	}

	u := url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(strings.Trim(host, "[]"), strconv.Itoa(cfg.Port)),
	}

	return u.String(), nil
}

func joinURL(baseURL, command string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(command, "/")
}
