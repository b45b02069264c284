package connectors

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
)

// FileConnector reads records the simulation appends to a capture file. Each
// request returns the complete lines written since the previous request; a
// trailing partial line is left for the next one. A file that shrank is read
// again from the start.
type FileConnector struct {
	Path   string
	mu     sync.Mutex
	offset int64
}

func NewFileConnector(path string) *FileConnector {
	return &FileConnector{Path: path}
}

func (c *FileConnector) Request(ctx context.Context) (io.ReadCloser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", c.Path, err)
	}

	if info.Size() < c.offset {
		log.Warnf("%s shrank from %d to %d bytes, reading from the start", c.Path, c.offset, info.Size())
		c.offset = 0
	}

	if _, err := f.Seek(c.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek %s: %w", c.Path, err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.Path, err)
	}

	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}

	c.offset += int64(end + 1)
	log.Debugf("read %d bytes from %s, offset now %d", end+1, c.Path, c.offset)

	return io.NopCloser(bytes.NewReader(data[:end+1])), nil
}

// Offset is the position the next request starts reading from.
func (c *FileConnector) Offset() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.offset
}
