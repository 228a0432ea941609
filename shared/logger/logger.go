package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogDebug is used for debugging messages with detailed internal information,
	// such as every cache hit, miss and eviction.
	LogDebug LogLevel = "debug"

	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"
)

var ErrUnknownLogLevel = fmt.Errorf("unknown log level")

// ZapLevel maps the level onto its zap counterpart.
func (l LogLevel) ZapLevel() (zapcore.Level, error) {
	switch l {
	case LogDebug:
		return zap.DebugLevel, nil
	case LogInfo:
		return zap.InfoLevel, nil
	case LogWarn:
		return zap.WarnLevel, nil
	case LogError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLogLevel, string(l))
	}
}

// NewConsole builds a human readable logger writing to w.
func NewConsole(w io.Writer, level LogLevel) (*zap.Logger, error) {
	zapLevel, err := level.ZapLevel()
	if err != nil {
		return nil, err
	}
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zapLevel,
	)
	return zap.New(consoleCore), nil
}
