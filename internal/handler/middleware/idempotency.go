package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"

	"highway-booking/internal/handler/httperr"
	"highway-booking/internal/infra/idempotency"
	"highway-booking/internal/pkg/errs"
	"highway-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

var (
	errRequestInProgress = errs.New("request with this idempotency key is in progress")
	errKeyReused         = errs.New("idempotency key reused with a different payload")
)

type IdempotencyStore interface {
	Claim(ctx context.Context, key, requestHash string) (*idempotency.Record, bool, error)
	Complete(ctx context.Context, key, requestHash string, statusCode int, body []byte) error
	Release(ctx context.Context, key string) error
}

// Idempotency replays the first successful response for a repeated Idempotency-Key.
// Requests without the header, or a nil store, pass straight through.
// Store failures are logged and the request is processed without dedupe.
func Idempotency(store IdempotencyStore, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(IdempotencyKeyHeader)
		if store == nil || raw == "" {
			c.Next()
			return
		}

		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key", nil)
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		hash := hex.EncodeToString(sum[:])

		ctx := c.Request.Context()
		rec, acquired, err := store.Claim(ctx, key.String(), hash)
		if err != nil {
			slog.Warn("idempotency store unavailable, processing without dedupe",
				"idempotency_key", key.String(), "error", err)
			c.Next()
			return
		}

		if !acquired {
			switch {
			case rec.RequestHash != hash:
				httperr.AbortWithError(c, http.StatusConflict, errKeyReused, "Idempotency-Key already used with a different payload", nil)
			case rec.Status == idempotency.StatusInProgress:
				httperr.AbortWithError(c, http.StatusConflict, errRequestInProgress, "Request in progress", nil)
			default:
				if m != nil {
					m.IdempotentReplays.Inc()
				}
				c.Header(ReplayedHeader, "true")
				c.Data(rec.StatusCode, "application/json; charset=utf-8", rec.Body)
				c.Abort()
			}
			return
		}

		w := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		// the client may already be gone; the record must still be settled
		storeCtx := context.WithoutCancel(ctx)
		if w.Status() == http.StatusCreated {
			if err := store.Complete(storeCtx, key.String(), hash, w.Status(), w.body.Bytes()); err != nil {
				slog.Warn("failed to store idempotent response", "idempotency_key", key.String(), "error", err)
			}
			return
		}
		if err := store.Release(storeCtx, key.String()); err != nil {
			slog.Warn("failed to release idempotency key", "idempotency_key", key.String(), "error", err)
		}
	}
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
