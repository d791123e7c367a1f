package logger

import (
	"context"
	"fmt"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
)

// InterceptorLogger adapts l to the go-grpc-middleware logging interface
func InterceptorLogger(l *zap.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		f := make([]zap.Field, 0, len(fields)/2)

		i := grpc_logging.Fields(fields).Iterator()
		for i.Next() {
			k, v := i.At()
			switch v := v.(type) {
			case string:
				f = append(f, zap.String(k, v))
			case int:
				f = append(f, zap.Int(k, v))
			case bool:
				f = append(f, zap.Bool(k, v))
			default:
				f = append(f, zap.Any(k, v))
			}
		}

		logger := l.WithOptions(zap.AddCallerSkip(1)).With(f...)

		switch lvl {
		case grpc_logging.LevelDebug:
			logger.Debug(msg)
		case grpc_logging.LevelInfo:
			logger.Info(msg)
		case grpc_logging.LevelWarn:
			logger.Warn(msg)
		case grpc_logging.LevelError:
			logger.Error(msg)
		default:
			logger.Error(fmt.Sprintf("unknown level %v: %s", lvl, msg))
		}
	})
}
