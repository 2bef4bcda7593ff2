package events

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geoprice/internal/config"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела
const SignatureHeader = "X-Webhook-Signature"

// popTimeout ограничивает BRPOP, чтобы воркер замечал отмену контекста
const popTimeout = 5 * time.Second

// Worker забирает события из очереди Redis и доставляет их во внешний вебхук
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди. done закрывается после остановки.
func (w *Worker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting area events worker...")

	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping area events worker.")
				return
			}

			result, err := w.redisClient.BRPop(ctx, popTimeout, areaEventsQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop area event from Redis")
				sleep(ctx, w.cfg.WebhookBaseDelay)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event AreaEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal area event from Redis")
				continue
			}

			w.deliver(ctx, event, []byte(payload))
		}
	}()
	return done
}

// deliver отправляет событие, между попытками задержка растет вдвое
func (w *Worker) deliver(ctx context.Context, event AreaEvent, payload []byte) bool {
	log := w.logger.WithFields(logrus.Fields{
		"event_kind":  event.Kind,
		"event_count": event.Count,
	})
	log.Debug("Processing area event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping delivery.")
		return false
	}

	maxRetries := max(w.cfg.WebhookMaxRetries, 1)
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = w.cfg.WebhookBaseDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		attempt++
		return w.send(ctx, payload)
	}
	notify := func(err error, next time.Duration) {
		log.WithError(err).WithField("next_attempt_in", next.String()).
			Warnf("Webhook delivery failed. Retries left: %d", maxRetries-attempt)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(maxRetries-1)), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		log.WithError(err).Errorf("Failed to deliver area event after %d attempts.", attempt)
		return false
	}

	log.WithField("attempt", attempt).Info("Webhook delivered successfully.")
	return true
}

func (w *Worker) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, Sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return nil
}

// Sign возвращает hex HMAC-SHA256 подпись тела
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// sleep ждет d или отмены контекста. false - контекст отменен.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
