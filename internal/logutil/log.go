// Package logutil wires zerolog into the auth.Logger contract.
package logutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the root application logger for the given level label.
// Unknown labels fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Adapter exposes a zerolog logger through the auth.Logger interface.
// Messages are a leading message followed by alternating key/value pairs;
// printf-style formats are detected and rendered verbatim.
type Adapter struct {
	log zerolog.Logger
}

// NewAdapter wraps a zerolog logger with a component name.
func NewAdapter(log zerolog.Logger, component string) *Adapter {
	return &Adapter{log: log.With().Str("component", component).Logger()}
}

func (a *Adapter) Debug(format string, args ...any) { a.emit(a.log.Debug(), format, args) }
func (a *Adapter) Info(format string, args ...any)  { a.emit(a.log.Info(), format, args) }
func (a *Adapter) Warn(format string, args ...any)  { a.emit(a.log.Warn(), format, args) }
func (a *Adapter) Error(format string, args ...any) { a.emit(a.log.Error(), format, args) }

func (a *Adapter) emit(evt *zerolog.Event, format string, args []any) {
	if strings.Contains(format, "%") {
		evt.Msgf(format, args...)
		return
	}

	if len(args)%2 != 0 {
		evt.Interface("args", args).Msg(format)
		return
	}

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("arg%d", i)
		}
		evt = evt.Interface(key, args[i+1])
	}
	evt.Msg(format)
}
