package logger

import (
	// 外部依赖
	"context"
	"os"
	"strings"

	uuid "github.com/gofrs/uuid/v5"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path     string
	LogLevel string
	ServiceEnv
}

type ctxKey string

const requestIDKey ctxKey = "LOG_REQUEST_ID"

var sugar *zap.SugaredLogger

func Init(conf *LogConfig) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.Path,
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), writer, parseLevel(conf.LogLevel)),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stderr), zapcore.WarnLevel),
	)

	sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).
		With(
			zap.String("platform", conf.Platform),
			zap.String("service", conf.Service),
			zap.String("env", conf.Env),
		).Sugar()
}

func Close() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithRequestID stamps ctx with a fresh correlation id carried into every
// log line for the invocation.
func WithRequestID(ctx context.Context) context.Context {
	id, err := uuid.NewV7()
	if err != nil {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id.String())
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func withCtx(ctx context.Context) *zap.SugaredLogger {
	l := sugar
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	if id := RequestID(ctx); id != "" {
		return l.With("request_id", id)
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...any) {
	withCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	withCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	withCtx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	withCtx(ctx).Errorf(format, args...)
}
