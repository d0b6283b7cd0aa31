// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log formats accepted by NewLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps debug | info | warn | error (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q (want debug | info | warn | error)", s)
	}
	return lv, nil
}

// NewLogger builds the diagnostics logger written to dst.
func NewLogger(dst io.Writer, level, format string) (*slog.Logger, error) {
	lv, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lv}
	switch format {
	case FormatText, "":
		return slog.New(slog.NewTextHandler(dst, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(dst, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text | json)", format)
	}
}

// Errorf prints a one-line error message for the user.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "error: "+format+"\n", a...)
}
