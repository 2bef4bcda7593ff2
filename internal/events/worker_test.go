package events

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/geoprice/internal/config"
	"github.com/shenikar/geoprice/internal/models"
	"github.com/shenikar/geoprice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url string) *Worker {
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWorker(nil, logger.NewDiscard(), cfg)
}

func testEvent(t *testing.T) (AreaEvent, []byte) {
	event := NewAreaEvent(KindAreaAdded, &models.LandArea{ID: "1", Name: "SoHo", Type: models.LandTypeCommercial})
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, payload
}

func TestDeliver_SignsPayload(t *testing.T) {
	event, payload := testEvent(t)

	var gotSignature string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get(SignatureHeader)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL).deliver(context.Background(), event, payload)

	require.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, Sign(payload, "secret"), gotSignature)
}

func TestDeliver_RetriesOnServerError(t *testing.T) {
	event, payload := testEvent(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL).deliver(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	event, payload := testEvent(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL).deliver(context.Background(), event, payload)

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	event, payload := testEvent(t)

	assert.False(t, newTestWorker("").deliver(context.Background(), event, payload))
}

func TestSign(t *testing.T) {
	// echo -n 'hello' | openssl dgst -sha256 -hmac key
	assert.Equal(t,
		"9307b3b915efb5171ff14d8cb55fbcc798c6c0ef1456d66ded1a6aa723a58b7b",
		Sign([]byte("hello"), "key"),
	)
	assert.NotEqual(t, Sign([]byte("hello"), "key"), Sign([]byte("hello"), "other"))
}

func TestSleep_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, sleep(ctx, time.Hour))
	assert.True(t, sleep(context.Background(), time.Millisecond))
}
