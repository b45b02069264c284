package connectors

import (
	"context"
	"io"
)

// Connector fetches the next chunk of raw telemetry from a source. The caller
// closes the returned reader.
type Connector interface {
	Request(ctx context.Context) (io.ReadCloser, error)
}
