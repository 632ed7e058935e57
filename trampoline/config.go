package trampoline

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config bounds and observes the runs of a trampolined function.
type Config struct {
	MaxBounces int         // default: 0, unlimited
	Logger     *zap.Logger // default: no-op
}

// NewConfig clamps a negative bound to unlimited and defaults to a no-op logger.
func NewConfig(maxBounces int, logger *zap.Logger) Config {
	if maxBounces < 0 {
		maxBounces = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return Config{
		MaxBounces: maxBounces,
		Logger:     logger,
	}
}

// NewDebugConfig logs every settled run to stderr in the zap console format.
func NewDebugConfig(maxBounces int) Config {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zap.DebugLevel,
	)
	return NewConfig(maxBounces, zap.New(consoleCore))
}

func normalizeConfig(config []Config) Config {
	switch len(config) {
	case 1:
		return NewConfig(config[0].MaxBounces, config[0].Logger)
	case 0:
		return NewConfig(0, nil)
	default:
		panic("normalizeConfig: only one or zero configs allowed")
	}
}
