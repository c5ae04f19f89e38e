//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"highway-booking/internal/handler/middleware"
	"highway-booking/internal/infra/idempotency"
	"highway-booking/internal/pkg/metrics"
	"highway-booking/tests/common/httptest"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type IdempotencyMiddlewareTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	store   *idempotency.RedisStore
	metrics *metrics.Metrics
	router  *gin.Engine
	calls   atomic.Int32
	status  int
}

func (s *IdempotencyMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.store = idempotency.NewRedisStore(s.client, time.Hour)
	s.metrics = metrics.NewMetrics()
	s.calls.Store(0)
	s.status = http.StatusCreated

	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	s.router.POST("/bookings", middleware.Idempotency(s.store, s.metrics), func(c *gin.Context) {
		n := s.calls.Add(1)
		c.JSON(s.status, gin.H{"data": gin.H{"bookingId": n}})
	})
}

func (s *IdempotencyMiddlewareTestSuite) TearDownTest() {
	_ = s.client.Close()
}

func TestIdempotencyMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(IdempotencyMiddlewareTestSuite))
}

func (s *IdempotencyMiddlewareTestSuite) post(body any, key string) (int, string, string) {
	headers := map[string]string{}
	if key != "" {
		headers[middleware.IdempotencyKeyHeader] = key
	}
	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/bookings", body, headers)
	return rec.Code, rec.Body.String(), rec.Header().Get(middleware.ReplayedHeader)
}

func (s *IdempotencyMiddlewareTestSuite) TestWithoutKeyEveryRequestIsProcessed() {
	body := map[string]any{"slotId": "slot-1"}

	code1, _, _ := s.post(body, "")
	code2, _, _ := s.post(body, "")

	s.Equal(http.StatusCreated, code1)
	s.Equal(http.StatusCreated, code2)
	s.Equal(int32(2), s.calls.Load())
}

func (s *IdempotencyMiddlewareTestSuite) TestRetryReplaysFirstResponse() {
	key := uuid.NewString()
	body := map[string]any{"slotId": "slot-1"}

	code1, body1, replayed1 := s.post(body, key)
	code2, body2, replayed2 := s.post(body, key)

	s.Equal(http.StatusCreated, code1)
	s.Empty(replayed1)
	s.Equal(http.StatusCreated, code2)
	s.Equal("true", replayed2)
	s.JSONEq(body1, body2)
	s.Equal(int32(1), s.calls.Load())
	s.InDelta(1, testutil.ToFloat64(s.metrics.IdempotentReplays), 0)
}

func (s *IdempotencyMiddlewareTestSuite) TestSameKeyDifferentPayloadIsRejected() {
	key := uuid.NewString()

	code1, _, _ := s.post(map[string]any{"slotId": "slot-1"}, key)
	code2, body2, _ := s.post(map[string]any{"slotId": "slot-2"}, key)

	s.Equal(http.StatusCreated, code1)
	s.Equal(http.StatusConflict, code2)
	s.Contains(body2, "different payload")
	s.Equal(int32(1), s.calls.Load())
}

func (s *IdempotencyMiddlewareTestSuite) TestInProgressKeyIsRejected() {
	key := uuid.NewString()
	body := map[string]any{"slotId": "slot-1"}
	// simulate a first request that has claimed the key and not finished
	hash := bodyHash(s.T(), body)
	_, acquired, err := s.store.Claim(context.Background(), key, hash)
	s.Require().NoError(err)
	s.Require().True(acquired)

	code, respBody, _ := s.post(body, key)

	s.Equal(http.StatusConflict, code)
	s.Contains(respBody, "Request in progress")
	s.Equal(int32(0), s.calls.Load())
}

func (s *IdempotencyMiddlewareTestSuite) TestFailedRequestReleasesKey() {
	key := uuid.NewString()
	body := map[string]any{"slotId": "slot-1"}

	s.status = http.StatusConflict
	code1, _, _ := s.post(body, key)
	s.status = http.StatusCreated
	code2, _, replayed := s.post(body, key)

	s.Equal(http.StatusConflict, code1)
	s.Equal(http.StatusCreated, code2)
	s.Empty(replayed)
	s.Equal(int32(2), s.calls.Load())
}

func (s *IdempotencyMiddlewareTestSuite) TestMalformedKeyIsRejected() {
	code, body, _ := s.post(map[string]any{"slotId": "slot-1"}, "not-a-uuid")

	s.Equal(http.StatusBadRequest, code)
	s.Contains(body, "Invalid Idempotency-Key")
	s.Equal(int32(0), s.calls.Load())
}

func (s *IdempotencyMiddlewareTestSuite) TestStoreOutageFailsOpen() {
	// nothing listens on port 1
	dead := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer func() { _ = dead.Close() }()

	calls := 0
	r := gin.New()
	r.POST("/bookings", middleware.Idempotency(idempotency.NewRedisStore(dead, time.Hour), nil), func(c *gin.Context) {
		calls++
		c.Status(http.StatusCreated)
	})

	headers := map[string]string{middleware.IdempotencyKeyHeader: uuid.NewString()}
	rec := httptest.PerformRequestWithHeaders(s.T(), r, http.MethodPost, "/bookings", map[string]any{"slotId": "slot-1"}, headers)

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal(1, calls)
}

func TestIdempotency_NilStorePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	calls := 0
	r := gin.New()
	r.POST("/bookings", middleware.Idempotency(nil, nil), func(c *gin.Context) {
		calls++
		c.Status(http.StatusCreated)
	})

	headers := map[string]string{middleware.IdempotencyKeyHeader: uuid.NewString()}
	httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/bookings", map[string]any{}, headers)
	httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/bookings", map[string]any{}, headers)

	if calls != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls)
	}
}
