package zap_adapter

import (
	"fmt"

	"battery-delivery/pkg/logger"

	"go.uber.org/zap"
)

type ZapAdapter struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

func NewZapAdapter() (*ZapAdapter, error) {
	config := zap.NewProductionConfig()

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Encoding = "json"

	zapLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}
	return &ZapAdapter{logger: zapLogger, level: config.Level}, nil
}

// NewNop логгер-заглушка для тестов.
func NewNop() *ZapAdapter {
	return &ZapAdapter{logger: zap.NewNop(), level: zap.NewAtomicLevel()}
}

// SetLevel меняет уровень на лету, в том числе для всех дочерних логгеров из With.
// Пустая строка оставляет текущий уровень.
func (z *ZapAdapter) SetLevel(level string) error {
	if level == "" {
		return nil
	}
	err := z.level.UnmarshalText([]byte(level))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	return nil
}

func (z *ZapAdapter) Debug(msg string, fields ...logger.Field) {
	z.logger.Debug(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.logger.Info(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.logger.Warn(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.logger.Error(msg, convertFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	zapFields := convertFields(fields)
	return &ZapAdapter{
		logger: z.logger.With(zapFields...),
		level:  z.level,
	}
}

func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

func convertFields(fields []logger.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			zapFields = append(zapFields, zap.NamedError(f.Key, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}
