package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level and destination of a logger. An empty File
// logs to stderr; otherwise the file is rotated by size.
type Options struct {
	Level string
	File  string
}

// New returns a JSON logger for component, leveled by LOG_LEVEL.
func New(component string) *zap.Logger {
	return NewWithOptions(component, Options{Level: os.Getenv("LOG_LEVEL")})
}

func NewWithOptions(component string, o Options) *zap.Logger {
	var w io.Writer = os.Stderr
	if o.File != "" {
		w = &lumberjack.Logger{Filename: o.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
	}
	return newLogger(component, o.Level, zapcore.AddSync(w))
}

func newLogger(component, level string, ws zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), ws, parseLevel(level))
	return zap.New(core).With(zap.String("component", component))
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}
