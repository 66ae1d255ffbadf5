package verbose

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const prefix = "[verbose]"

// Logger writes prefixed diagnostic lines when verbose output is enabled.
// A nil Logger discards everything.
type Logger struct {
	log *zap.SugaredLogger
}

// New returns a Logger writing to w. A nil writer yields a nil Logger.
func New(w io.Writer, sessionID string) *Logger {
	if w == nil {
		return nil
	}
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)
	name := prefix
	if sessionID != "" {
		name = prefix + " " + sessionID
	}
	return &Logger{log: zap.New(core).Named(name).Sugar()}
}

// Printf writes a single formatted line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.log.Infof(format, args...)
}

// Block writes a header followed by each line of body.
func (l *Logger) Block(header, body string) {
	if l == nil {
		return
	}
	l.log.Info(header)
	if strings.TrimSpace(body) == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		l.log.Info(line)
	}
}

// Sync flushes buffered output.
func (l *Logger) Sync() {
	if l == nil {
		return
	}
	_ = l.log.Sync()
}
