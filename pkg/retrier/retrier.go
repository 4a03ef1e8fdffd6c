package retrier

import (
	"context"
	"time"
)

// Retrier - порт для повторов с отсрочкой, реализация в backoff_adapter
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// MaxElapsedTime = 0 означает ретраить до отмены контекста
	MaxElapsedTime time.Duration
	Randomization  float64
	Multiplier     float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc
}
