package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tracker/internal/entities"
	"tracker/pkg/retrier"
	"tracker/pkg/retrier/backoff_adapter"
)

const serviceName = "tracking-backend"

const (
	retryInitialInterval = 100 * time.Millisecond
	retryMaxInterval     = 2 * time.Second
	retryMaxElapsedTime  = 10 * time.Second
	retryRandomization   = 0.5
	retryMultiplier      = 2.0
)

// Gateway - HTTP/JSON клиент request/response API бэкенда. Push-канал
// сюда не ходит, гейтвей нужен ресинхронизации и истории заказа.
type Gateway struct {
	client  httpDoer
	baseURL string
	retrier retrier.Retrier
}

func New(client httpDoer, baseURL string) *Gateway {
	return &Gateway{
		client:  client,
		baseURL: baseURL,
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: retryInitialInterval,
			MaxInterval:     retryMaxInterval,
			MaxElapsedTime:  retryMaxElapsedTime,
			Randomization:   retryRandomization,
			Multiplier:      retryMultiplier,
			ShouldRetry:     isRetryable,
		}),
	}
}

func (g *Gateway) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	var dto orderDTO

	err := g.executeWithMetrics(ctx, "GetOrder", func(ctx context.Context) error {
		return g.getJSON(ctx, "/v1/orders/"+url.PathEscape(orderID), &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	return toDomainOrder(dto)
}

// GetLatestPosition возвращает nil без ошибки, если бэкенд еще не видел
// ни одной координаты по заказу.
func (g *Gateway) GetLatestPosition(ctx context.Context, orderID string) (*entities.PositionSample, error) {
	var dto positionDTO

	err := g.executeWithMetrics(ctx, "GetLatestPosition", func(ctx context.Context) error {
		return g.getJSON(ctx, "/v1/orders/"+url.PathEscape(orderID)+"/position", &dto)
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest position %s: %w", orderID, err)
	}

	return toDomainPosition(dto), nil
}

func (g *Gateway) GetUnreadCount(ctx context.Context, orderID, userID string) (int64, error) {
	var dto unreadDTO

	err := g.executeWithMetrics(ctx, "GetUnreadCount", func(ctx context.Context) error {
		path := "/v1/orders/" + url.PathEscape(orderID) + "/messages/unread?user_id=" + url.QueryEscape(userID)
		return g.getJSON(ctx, path, &dto)
	})
	if err != nil {
		return 0, fmt.Errorf("get unread count %s: %w", orderID, err)
	}

	return dto.Count, nil
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()
	attempts := 0

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempts++
		return fn(ctx)
	})

	code := codeOf(err)
	if attempts > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Add(float64(attempts - 1))
	}
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	return err
}

func (g *Gateway) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrOrderNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// isRetryable: транспортные ошибки и 429/5xx ретраятся, остальные
// HTTP-коды и not found - нет.
func isRetryable(err error) bool {
	if errors.Is(err, ErrOrderNotFound) {
		return false
	}

	var httpErr *statusError
	if errors.As(err, &httpErr) {
		return httpErr.code == http.StatusTooManyRequests || httpErr.code >= http.StatusInternalServerError
	}
	return true
}

func codeOf(err error) string {
	if err == nil {
		return "200"
	}

	var httpErr *statusError
	if errors.As(err, &httpErr) {
		return strconv.Itoa(httpErr.code)
	}
	if errors.Is(err, ErrOrderNotFound) {
		return "404"
	}
	return "error"
}
