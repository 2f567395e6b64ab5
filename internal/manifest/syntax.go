package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/thoreinstein/nsvalidate/internal/errors"
)

// SyntaxError describes malformed JSON with a 1-based position.
type SyntaxError struct {
	Msg    string `json:"message"`
	Offset int64  `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// IsSyntaxError reports whether err is (or wraps) a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// newSyntaxError converts an encoding/json error into a *SyntaxError.
func newSyntaxError(err error, data []byte) *SyntaxError {
	var jsonErr *json.SyntaxError
	if errors.As(err, &jsonErr) {
		return positioned(jsonErr.Error(), data, jsonErr.Offset)
	}
	return positioned(err.Error(), data, int64(len(data)))
}

// positioned builds a SyntaxError for the byte just before offset, which is
// where encoding/json stopped reading.
func positioned(msg string, data []byte, offset int64) *SyntaxError {
	pos := int(offset) - 1
	if pos < 0 {
		pos = 0
	}
	line, col := offsetToLineCol(data, pos)
	return &SyntaxError{
		Msg:    msg,
		Offset: int64(pos),
		Line:   line,
		Column: col,
	}
}

// offsetToLineCol converts a byte offset to 1-based line and column numbers.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	if offset > len(data) {
		offset = len(data)
	}
	if offset < 0 {
		offset = 0
	}

	line = 1
	lineStart := 0

	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col = offset - lineStart + 1
	return line, col
}
