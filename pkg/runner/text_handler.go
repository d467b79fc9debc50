package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ErrHandlerClosed is returned by Input once the handler has been closed.
var ErrHandlerClosed = errors.New("text handler closed")

// TextHandler implements the standard text-based interface.
// The screen already ends with the menu prompt, so input is read on the same line.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	lines     chan inputResult
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.lines = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honour ctx cancellation.
// It exits on EOF or, after its current read, once the handler is closed.
func (h *TextHandler) pump() {
	defer close(h.lines)
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" && !h.send(inputResult{text: text}) {
			return
		}

		if err != nil {
			if err == io.EOF || !h.send(inputResult{err: err}) {
				return
			}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			select {
			case <-h.done:
				return
			case <-time.After(50 * time.Millisecond):
			}
		}
	}
}

func (h *TextHandler) send(res inputResult) bool {
	select {
	case h.lines <- res:
		return true
	case <-h.done:
		return false
	}
}

// Close stops the background reader. A read already blocked on the
// underlying reader returns with its next line, which is discarded.
func (h *TextHandler) Close() error {
	h.closeOnce.Do(func() { close(h.done) })
	return nil
}

func (h *TextHandler) closed() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Output writes the screen, leaving the cursor after the prompt.
func (h *TextHandler) Output(ctx context.Context, screen string) error {
	output := screen
	if h.Renderer != nil {
		if rendered, err := h.Renderer(screen); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprint(h.Writer, output, " ")
	return err
}

// Input returns the next line with surrounding whitespace trimmed.
// Cancelling ctx closes the handler.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	if h.closed() {
		return "", ErrHandlerClosed
	}
	h.initPump()

	select {
	case <-h.done:
		return "", ErrHandlerClosed
	case <-ctx.Done():
		h.Close()
		return "", ctx.Err()
	case res, ok := <-h.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.text), nil
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "\n[System] %s\n", msg)
	return err
}
