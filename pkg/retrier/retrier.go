package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc
}

// Connect настройки для первичного подключения к инфраструктуре (postgres, kafka).
func Connect(initialInterval time.Duration) Config {
	return Config{
		InitialInterval: initialInterval,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

// Forever настройки без ограничения по времени, останавливается только отменой контекста.
func Forever(initialInterval, maxInterval time.Duration) Config {
	return Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  0,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
