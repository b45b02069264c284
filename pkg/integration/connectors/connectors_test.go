package connectors

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type headerAuth struct {
	token string
}

func (a headerAuth) Authenticate(_ *HttpConnector, req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+a.token)
	return nil
}

func TestHttpGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		assert.Contains(t, r.Header.Get("User-Agent"), "newrelic-labs-simevents")
		w.Write([]byte(`{"Name":"IntroCutEnd","Timestamp":1,"Value":{}}`))
	}))
	defer srv.Close()

	c := NewHttpGetConnector(srv.URL)
	c.SetAuthenticator(headerAuth{"abc"})
	c.SetHeaders(map[string]string{"X-Test": "yes"})

	data, err := c.RequestBytes(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(data), "IntroCutEnd")
}

func TestHttpPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	}))
	defer srv.Close()

	c := NewHttpPostConnector(srv.URL, HttpBodyBuilder(func() (any, error) {
		return "since=10", nil
	}))

	data, err := c.RequestBytes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "since=10", string(data))
}

func TestHttpRetriesServerErrors(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewHttpGetConnector(srv.URL)
	c.SetRetries(3, time.Millisecond)

	data, err := c.RequestBytes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestHttpClientErrorIsNotRetried(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHttpGetConnector(srv.URL)
	c.SetRetries(3, time.Millisecond)

	_, err := c.Request(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHttpUnsupportedMethod(t *testing.T) {
	c := NewHttpGetConnector("http://localhost")
	c.SetMethod("DELETE")

	_, err := c.Request(context.Background())
	assert.Error(t, err)
}

func readAll(t *testing.T, rc io.ReadCloser, err error) string {
	t.Helper()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestFileConnectorReadsCompleteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nparti"), 0o644))

	c := NewFileConnector(path)
	ctx := context.Background()

	rc, err := c.Request(ctx)
	assert.Equal(t, "a\nb\n", readAll(t, rc, err))
	assert.Equal(t, int64(4), c.Offset())

	rc, err = c.Request(ctx)
	assert.Equal(t, "", readAll(t, rc, err))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("al\nc\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rc, err = c.Request(ctx)
	assert.Equal(t, "partial\nc\n", readAll(t, rc, err))
}

func TestFileConnectorRestartsAfterTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0o644))

	c := NewFileConnector(path)
	ctx := context.Background()

	rc, err := c.Request(ctx)
	readAll(t, rc, err)

	require.NoError(t, os.WriteFile(path, []byte("new\n"), 0o644))

	rc, err = c.Request(ctx)
	assert.Equal(t, "new\n", readAll(t, rc, err))
}

func TestFileConnectorMissingFile(t *testing.T) {
	c := NewFileConnector(filepath.Join(t.TempDir(), "nope"))

	_, err := c.Request(context.Background())
	assert.Error(t, err)
}

type fakeReader struct {
	messages []kafka.Message
	failWith error
	closed   bool
}

func (f *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.messages) > 0 {
		msg := f.messages[0]
		f.messages = f.messages[1:]
		return msg, nil
	}

	if f.failWith != nil {
		return kafka.Message{}, f.failWith
	}

	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func TestKafkaConnectorBatches(t *testing.T) {
	r := &fakeReader{messages: []kafka.Message{
		{Value: []byte(`{"Name":"a"}`)},
		{Value: []byte("{\"Name\":\"b\"}\n")},
		{Value: []byte(`{"Name":"c"}`)},
	}}

	c := newKafkaConnector("telemetry", r)
	c.SetBatch(2, 50*time.Millisecond)

	rc, err := c.Request(context.Background())
	assert.Equal(t, "{\"Name\":\"a\"}\n{\"Name\":\"b\"}\n", readAll(t, rc, err))

	rc, err = c.Request(context.Background())
	assert.Equal(t, "{\"Name\":\"c\"}\n", readAll(t, rc, err))

	rc, err = c.Request(context.Background())
	assert.Equal(t, "", readAll(t, rc, err))

	require.NoError(t, c.Close())
	assert.True(t, r.closed)
}

func TestKafkaConnectorReadError(t *testing.T) {
	c := newKafkaConnector("telemetry", &fakeReader{failWith: errors.New("broker down")})

	_, err := c.Request(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestKafkaConnectorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newKafkaConnector("telemetry", &fakeReader{})

	_, err := c.Request(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
