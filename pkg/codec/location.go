package codec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// StdioLocation is the location meaning standard input for Load and standard output for Save.
const StdioLocation = "-"

// StoreScheme prefixes locations served by a ports.DocumentStore.
const StoreScheme = "store://"

type locationKind int

const (
	kindPath locationKind = iota
	kindStdio
	kindURL
	kindStore
	kindLiteral
)

func kindOf(loc string) locationKind {
	trimmed := strings.TrimSpace(loc)
	switch {
	case loc == StdioLocation:
		return kindStdio
	case strings.HasPrefix(trimmed, "<"):
		return kindLiteral
	case strings.HasPrefix(loc, "http://"), strings.HasPrefix(loc, "https://"):
		return kindURL
	case strings.HasPrefix(loc, StoreScheme):
		return kindStore
	}
	return kindPath
}

// openRead opens exactly one resource for Load. The caller must close it.
func (c *Codec) openRead(ctx context.Context) (io.ReadCloser, error) {
	if c.reader != nil {
		return io.NopCloser(c.reader), nil
	}

	switch kindOf(c.location) {
	case kindStdio:
		return io.NopCloser(c.stdin), nil
	case kindLiteral:
		return io.NopCloser(strings.NewReader(c.location)), nil
	case kindURL:
		return c.openURL(ctx)
	case kindStore:
		if c.store == nil {
			return nil, ErrNoStore
		}
		data, err := c.store.Get(ctx, strings.TrimPrefix(c.location, StoreScheme))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", c.location, err)
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	if c.location == "" {
		return nil, errEmptyLocation
	}
	f, err := os.Open(c.location)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", c.location, err)
	}
	return f, nil
}

func (c *Codec) openURL(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.location, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid url %s: %w", c.location, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", c.location, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", c.location, resp.Status)
	}
	return resp.Body, nil
}

// openWrite opens exactly one resource for Save. The caller must close it.
func (c *Codec) openWrite(ctx context.Context) (io.WriteCloser, error) {
	if c.writer != nil {
		return nopWriteCloser{c.writer}, nil
	}

	switch kindOf(c.location) {
	case kindStdio:
		return nopWriteCloser{c.stdout}, nil
	case kindLiteral, kindURL:
		return nil, ErrReadOnlyLocation
	case kindStore:
		if c.store == nil {
			return nil, ErrNoStore
		}
		return &storeWriter{ctx: ctx, codec: c, name: strings.TrimPrefix(c.location, StoreScheme)}, nil
	}

	if c.location == "" {
		return nil, errEmptyLocation
	}
	f, err := os.Create(c.location)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// storeWriter buffers the document and puts it on Close.
type storeWriter struct {
	ctx   context.Context
	codec *Codec
	name  string
	buf   bytes.Buffer
}

func (w *storeWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *storeWriter) Close() error {
	return w.codec.store.Put(w.ctx, w.name, w.buf.Bytes())
}
