package query

import (
	"errors"
	"fmt"
)

var ErrOrderNotFound = errors.New("order not found")

// statusError - не-2xx ответ бэкенда, код нужен ретраеру и метрикам.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend responded with status %d", e.code)
}
