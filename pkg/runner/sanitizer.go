package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxInputSize bounds one input line. Selectors are short integer
// tokens, so anything longer cannot select a choice.
const DefaultMaxInputSize = 64

// EnvMaxInputSize overrides DefaultMaxInputSize.
const EnvMaxInputSize = "MENUSYS_MAX_INPUT_SIZE"

// ErrInputRejected matches every error returned by SanitizeInput.
var ErrInputRejected = errors.New("input rejected")

// RejectedInputError explains why a line was refused.
type RejectedInputError struct {
	Reason string
}

func (e *RejectedInputError) Error() string {
	return "input rejected: " + e.Reason
}

func (e *RejectedInputError) Is(target error) bool {
	return target == ErrInputRejected
}

// SanitizeInput checks a trimmed input line before it reaches the menu.
// Lines are never rewritten: oversized lines, invalid UTF-8 and control
// characters are refused so that what is looked up is exactly what was typed.
func SanitizeInput(input string) (string, error) {
	if limit := maxInputSize(); len(input) > limit {
		return "", &RejectedInputError{Reason: fmt.Sprintf("%d bytes exceeds the limit of %d", len(input), limit)}
	}
	if !utf8.ValidString(input) {
		return "", &RejectedInputError{Reason: "invalid UTF-8"}
	}
	for i, r := range input {
		if unicode.IsControl(r) {
			return "", &RejectedInputError{Reason: fmt.Sprintf("control character %U at offset %d", r, i)}
		}
	}
	return input, nil
}

func maxInputSize() int {
	if size, err := strconv.Atoi(os.Getenv(EnvMaxInputSize)); err == nil && size > 0 {
		return size
	}
	return DefaultMaxInputSize
}
