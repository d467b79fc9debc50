package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Message is one JSON line written by JSONHandler.
type Message struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Message types emitted by JSONHandler.
const (
	MessageScreen = "screen"
	MessageSystem = "system"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Every screen is one JSON object; every input line is either a JSON string or plain text.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, screen string) error {
	return h.Encoder.Encode(Message{Type: MessageScreen, Content: screen})
}

// Input returns the next line. JSON strings are unquoted; other lines are
// taken as plain text.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val string
	if jsonErr := json.Unmarshal([]byte(text), &val); jsonErr != nil {
		return text, nil
	}
	return strings.TrimSpace(val), nil
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Message{Type: MessageSystem, Content: msg})
}
