package connectors

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultRetries   = 3
	defaultRetryWait = time.Second
)

type HttpConnector struct {
	Method        string
	Url           string
	UserAgent     string
	Headers       map[string]string
	Body          any
	Authenticator HttpAuthenticator
	Timeout       time.Duration
	Retries       int
	RetryWait     time.Duration
}

type HttpAuthenticator interface {
	Authenticate(connector *HttpConnector, req *http.Request) error
}

type HttpBodyBuilder func() (any, error)

// Build a Connector for HTTP GET requests.
func NewHttpGetConnector(url string) *HttpConnector {
	return &HttpConnector{
		Method:    "GET",
		Url:       url,
		Timeout:   defaultTimeout,
		Retries:   defaultRetries,
		RetryWait: defaultRetryWait,
	}
}

// Build a Connector for HTTP POST requests.
func NewHttpPostConnector(
	url string,
	body any,
) *HttpConnector {
	return &HttpConnector{
		Method:    "POST",
		Url:       url,
		Body:      body,
		Timeout:   defaultTimeout,
		Retries:   defaultRetries,
		RetryWait: defaultRetryWait,
	}
}

func (c *HttpConnector) Request(ctx context.Context) (io.ReadCloser, error) {
	var body []byte

	switch strings.ToLower(c.Method) {
	case "get":

	case "post":
		b, err := buildPostBody(c.Body)
		if err != nil {
			return nil, err
		}
		body = b

	default:
		return nil, fmt.Errorf("unsupported HTTP method %q", c.Method)
	}

	return c.do(ctx, strings.ToUpper(c.Method), body)
}

func (c *HttpConnector) RequestBytes(ctx context.Context) ([]byte, error) {
	readCloser, err := c.Request(ctx)
	if err != nil {
		return nil, err
	}

	defer readCloser.Close()

	return io.ReadAll(readCloser)
}

func (c *HttpConnector) SetAuthenticator(authenticator HttpAuthenticator) {
	c.Authenticator = authenticator
}

func (c *HttpConnector) SetMethod(method string) {
	c.Method = method
}

func (c *HttpConnector) SetUrl(url string) {
	c.Url = url
}

func (c *HttpConnector) SetBody(body any) {
	c.Body = body
}

func (c *HttpConnector) SetUserAgent(userAgent string) {
	c.UserAgent = userAgent
}

func (c *HttpConnector) SetHeaders(headers map[string]string) {
	c.Headers = headers
}

func (c *HttpConnector) SetTimeout(timeout time.Duration) {
	c.Timeout = timeout
}

func (c *HttpConnector) SetRetries(retries int, wait time.Duration) {
	c.Retries = retries
	c.RetryWait = wait
}

func (c *HttpConnector) newClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{log.WithFields(logrus.Fields{"url": c.Url})}
	client.RetryMax = c.Retries
	client.HTTPClient.Timeout = c.Timeout

	if c.RetryWait > 0 {
		client.RetryWaitMin = c.RetryWait
		client.RetryWaitMax = 4 * c.RetryWait
	}

	return client
}

func (c *HttpConnector) do(
	ctx context.Context,
	method string,
	body []byte,
) (io.ReadCloser, error) {
	log.Debugf("creating HTTP %s request for %s", method, c.Url)

	var rawBody any
	if body != nil {
		rawBody = body
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.Url, rawBody)
	if err != nil {
		return nil, err
	}

	for key, val := range c.Headers {
		req.Header.Add(key, val)
	}

	userAgent := c.UserAgent
	if userAgent == "" {
		userAgent = GetUserAgent()
	}

	req.Header.Set("User-Agent", userAgent)

	if c.Authenticator != nil {
		log.Debugf("authenticating request for %s", c.Url)
		err = c.Authenticator.Authenticate(c, req.Request)
		if err != nil {
			return nil, err
		}
	}

	log.Debugf("performing request for %s", c.Url)
	resp, err := c.newClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf(
			"error connecting to %s: %w",
			c.Url,
			err,
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf(
			"error connecting to %s with status %d",
			c.Url,
			resp.StatusCode,
		)
	}

	return resp.Body, nil
}

func buildPostBody(b any) ([]byte, error) {
	switch body := b.(type) {
	case nil:
		return []byte{}, nil
	case io.Reader:
		return io.ReadAll(body)
	case string:
		return []byte(body), nil
	case []byte:
		return bytes.Clone(body), nil
	case HttpBodyBuilder:
		c, err := body()
		if err != nil {
			return nil, err
		}
		return buildPostBody(c)

	default:
		return nil, fmt.Errorf("unsupported type for body: %T", b)
	}
}

func GetUserAgent() string {
	return fmt.Sprintf(
		"newrelic-labs-simevents (%s; %s)",
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// leveledLogger routes the retry client's logging through logrus.
type leveledLogger struct {
	entry *logrus.Entry
}

func (l leveledLogger) with(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return l.entry.WithFields(fields)
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Error(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Debug(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Debug(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Warn(msg)
}
