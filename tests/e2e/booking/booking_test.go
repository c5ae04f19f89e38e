//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"highway-booking/internal/handler/dto/response"
	"highway-booking/internal/handler/middleware"
	sqlc "highway-booking/internal/infra/sqlc/generated"
	"highway-booking/internal/pkg/pgconv"
	"highway-booking/tests/common/builder"
	"highway-booking/tests/common/dbtest"
	"highway-booking/tests/common/httptest"
	"highway-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const bookingsURL = "/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type bookingEnvelope struct {
	Data response.BookingResponse `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// =============================================================================
// TestCreateBooking - checkout API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is priced server-side and capacity drops", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Sunrise Hot Air Balloon Ride", "150")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "05:00 - 07:00", 8)

		body := builder.NewBookingBuilder().
			WithExperienceID(expID).
			WithPeopleCount(2).
			WithPromoCode("save10").
			BuildRequestMap()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual bookingEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := response.BookingResponse{
			BookingID:       1,
			FinalAmount:     270,
			ExperienceTitle: "Sunrise Hot Air Balloon Ride",
			Date:            "2025-11-05",
			Timeslot:        "05:00 - 07:00",
		}
		if diff := cmp.Diff(expected, actual.Data); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, 6, dbtest.SlotCapacity(t, s.DB, expID, "slot-1"))

		var (
			amount, discount, final decimal.Decimal
			promo                   *string
		)
		err := s.DB.QueryRow(context.Background(),
			"SELECT amount, discount, final_amount, promo_code_applied FROM bookings WHERE id = $1",
			actual.Data.BookingID).Scan(&amount, &discount, &final, &promo)
		require.NoError(t, err)
		require.True(t, decimal.NewFromInt(300).Equal(amount), amount.String())
		require.True(t, decimal.NewFromInt(30).Equal(discount), discount.String())
		require.True(t, decimal.NewFromInt(270).Equal(final), final.String())
		require.NotNil(t, promo)
		require.Equal(t, "SAVE10", *promo)
	})

	s.Run("Normal case: experienceId as numeric string and flat promo", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Kyoto Tea Ceremony", "75")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "10:00 - 11:30", 10)

		body := builder.NewBookingBuilder().WithPeopleCount(4).WithPromoCode("FLAT100").BuildRequestMap()
		body["experienceId"] = fmt.Sprint(expID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual bookingEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, float64(200), actual.Data.FinalAmount)
	})

	s.Run("Normal case: unknown promo is ignored and stored as NULL", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Kyoto Tea Ceremony", "75")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "10:00 - 11:30", 10)

		body := builder.NewBookingBuilder().WithExperienceID(expID).WithPeopleCount(2).WithPromoCode("BOGUS").BuildRequestMap()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual bookingEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, float64(150), actual.Data.FinalAmount)

		var promo *string
		err := s.DB.QueryRow(context.Background(),
			"SELECT promo_code_applied FROM bookings WHERE id = $1", actual.Data.BookingID).Scan(&promo)
		require.NoError(t, err)
		require.Nil(t, promo)
	})

	s.Run("Error case: booking more seats than remain returns 409", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Northern Lights Hunt", "180")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "20:00 - 23:00", 3)

		body := builder.NewBookingBuilder().WithExperienceID(expID).WithPeopleCount(4).BuildRequestMap()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var actual errorEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, "Selected slot is sold out or insufficient seats", actual.Error.Message)

		require.Equal(t, 3, dbtest.SlotCapacity(t, s.DB, expID, "slot-1"))
		require.Zero(t, dbtest.CountBookings(t, s.DB, expID))
	})

	s.Run("Error case: unknown experience returns 404", func() {
		t := s.T()

		body := builder.NewBookingBuilder().WithExperienceID(999999).BuildRequestMap()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown slot returns 400", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Northern Lights Hunt", "180")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "20:00 - 23:00", 3)

		body := builder.NewBookingBuilder().WithExperienceID(expID).WithSlotID("slot-404").BuildRequestMap()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		var actual errorEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, "Slot not found", actual.Error.Message)
	})

	s.Run("Error case: invalid payloads return 400 without touching capacity", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Northern Lights Hunt", "180")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "20:00 - 23:00", 3)

		bodies := []map[string]any{
			builder.NewBookingBuilder().WithExperienceID(expID).WithPeopleCount(0).BuildRequestMap(),
			builder.NewBookingBuilder().WithExperienceID(expID).WithPeopleCount(11).BuildRequestMap(),
			builder.NewBookingBuilder().WithExperienceID(expID).WithEmail("nope").BuildRequestMap(),
			builder.NewBookingBuilder().WithExperienceID(expID).With(func(b *builder.BookingBuilder) { b.Name = " J " }).BuildRequestMap(),
		}
		for _, body := range bodies {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		}

		require.Equal(t, 3, dbtest.SlotCapacity(t, s.DB, expID, "slot-1"))
	})
}

// =============================================================================
// TestConcurrentBookings - no oversell under contention
// =============================================================================

func (s *BookingSuite) TestConcurrentBookings() {
	s.Run("Concurrency: parallel checkouts never exceed capacity", func() {
		t := s.T()

		const (
			capacity = 5
			attempts = 20
		)
		expID := dbtest.CreateTestExperience(t, s.DB, "Sunrise Hot Air Balloon Ride", "250")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "05:00 - 07:00", capacity)

		var created, conflicted atomic.Int32
		var g errgroup.Group
		for i := range attempts {
			g.Go(func() error {
				body := builder.NewBookingBuilder().
					WithExperienceID(expID).
					WithPeopleCount(1).
					WithEmail(fmt.Sprintf("guest%d@example.com", i)).
					BuildRequestMap()

				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
				switch w.Code {
				case http.StatusCreated:
					created.Add(1)
				case http.StatusConflict:
					conflicted.Add(1)
				default:
					return fmt.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, int32(capacity), created.Load())
		require.Equal(t, int32(attempts-capacity), conflicted.Load())
		require.Zero(t, dbtest.SlotCapacity(t, s.DB, expID, "slot-1"))
		require.Equal(t, capacity, dbtest.CountBookings(t, s.DB, expID))
	})

	s.Run("Concurrency: multi-seat requests never oversell", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Northern Lights Hunt", "180")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "20:00 - 23:00", 10)

		var seatsSold atomic.Int32
		var g errgroup.Group
		for i := range 12 {
			people := i%3 + 1
			g.Go(func() error {
				body := builder.NewBookingBuilder().WithExperienceID(expID).WithPeopleCount(people).BuildRequestMap()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
				if w.Code == http.StatusCreated {
					seatsSold.Add(int32(people)) // #nosec G115 -- 1..3
				} else if w.Code != http.StatusConflict {
					return fmt.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		remaining := dbtest.SlotCapacity(t, s.DB, expID, "slot-1")
		require.GreaterOrEqual(t, remaining, 0)
		require.Equal(t, 10, remaining+int(seatsSold.Load()))
	})
}

// =============================================================================
// TestAtomicity - a failed insert restores capacity
// =============================================================================

func (s *BookingSuite) TestAtomicity() {
	s.Run("Rollback: booking insert failure leaves capacity untouched", func() {
		t := s.T()
		ctx := context.Background()

		_, err := s.DB.Exec(ctx, `
			CREATE OR REPLACE FUNCTION reject_marked_booking() RETURNS trigger AS $$
			BEGIN
				IF NEW.name = 'Reject Me' THEN
					RAISE EXCEPTION 'booking rejected by test trigger';
				END IF;
				RETURN NEW;
			END;
			$$ LANGUAGE plpgsql;
			CREATE TRIGGER reject_marked_booking BEFORE INSERT ON bookings
				FOR EACH ROW EXECUTE FUNCTION reject_marked_booking();`)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = s.DB.Exec(context.Background(), "DROP TRIGGER IF EXISTS reject_marked_booking ON bookings")
		})

		expID := dbtest.CreateTestExperience(t, s.DB, "Sunrise Hot Air Balloon Ride", "250")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "05:00 - 07:00", 4)

		body := builder.NewBookingBuilder().
			WithExperienceID(expID).
			With(func(b *builder.BookingBuilder) { b.Name = "Reject Me" }).
			BuildRequestMap()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
		require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())

		var actual errorEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, "Failed to create booking", actual.Error.Message)

		require.Equal(t, 4, dbtest.SlotCapacity(t, s.DB, expID, "slot-1"))
		require.Zero(t, dbtest.CountBookings(t, s.DB, expID))
	})
}

// =============================================================================
// TestSnapshot - bookings keep the catalog data they were made against
// =============================================================================

func (s *BookingSuite) TestSnapshot() {
	s.Run("Snapshot: catalog edits do not rewrite past bookings", func() {
		t := s.T()
		ctx := context.Background()

		expID := dbtest.CreateTestExperience(t, s.DB, "Kyoto Tea Ceremony", "75")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "10:00 - 11:30", 10)

		body := builder.NewBookingBuilder().WithExperienceID(expID).BuildRequestMap()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created bookingEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		_, err := s.DB.Exec(ctx, "UPDATE experiences SET title = 'Renamed', price_per_person = 999 WHERE id = $1", expID)
		require.NoError(t, err)
		_, err = s.DB.Exec(ctx, "UPDATE slots SET timeslot = '12:00 - 13:00', date = '2025-12-01' WHERE experience_id = $1", expID)
		require.NoError(t, err)

		row, err := sqlc.New().GetBookingByID(ctx, s.DB, created.Data.BookingID)
		require.NoError(t, err)
		require.Equal(t, expID, row.ExperienceID)
		require.Equal(t, "Kyoto Tea Ceremony", row.ExperienceTitle)
		require.Equal(t, "slot-1", row.SlotID)
		require.Equal(t, "10:00 - 11:30", row.Timeslot)
		require.Equal(t, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(row.Date))
		require.True(t, decimal.NewFromInt(150).Equal(row.Amount), row.Amount.String())
		require.True(t, decimal.NewFromInt(150).Equal(row.FinalAmount), row.FinalAmount.String())
		require.False(t, row.PromoCodeApplied.Valid)
	})
}

// =============================================================================
// TestIdempotency - retried checkouts with the same key
// =============================================================================

func (s *BookingSuite) TestIdempotency() {
	s.Run("Idempotency: a retried request is replayed, not rebooked", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Northern Lights Hunt", "180")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "20:00 - 23:00", 6)

		body := builder.NewBookingBuilder().WithExperienceID(expID).WithPeopleCount(2).BuildRequestMap()
		headers := map[string]string{middleware.IdempotencyKeyHeader: uuid.NewString()}

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, headers)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		httptest.AssertHeaders(t, first, map[string]string{middleware.ReplayedHeader: ""})

		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, headers)
		require.Equal(t, http.StatusCreated, second.Code, second.Body.String())
		httptest.AssertHeaders(t, second, map[string]string{middleware.ReplayedHeader: "true"})
		require.JSONEq(t, first.Body.String(), second.Body.String())

		require.Equal(t, 4, dbtest.SlotCapacity(t, s.DB, expID, "slot-1"))
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, expID))

		body["peopleCount"] = 3
		third := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, headers)
		require.Equal(t, http.StatusConflict, third.Code, third.Body.String())
	})

	s.Run("Idempotency: requests without a key are never deduplicated", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Northern Lights Hunt", "180")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "20:00 - 23:00", 6)

		body := builder.NewBookingBuilder().WithExperienceID(expID).BuildRequestMap()
		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
		require.Equal(t, 2, dbtest.CountBookings(t, s.DB, expID))
	})
}

// =============================================================================
// TestMetrics - reservation outcomes are exported
// =============================================================================

func (s *BookingSuite) TestMetrics() {
	s.Run("Metrics: reservation outcomes appear on /metrics", func() {
		t := s.T()

		expID := dbtest.CreateTestExperience(t, s.DB, "Kyoto Tea Ceremony", "75")
		dbtest.CreateTestSlot(t, s.DB, expID, "slot-1", "2025-11-05", "10:00 - 11:30", 1)

		body := builder.NewBookingBuilder().WithExperienceID(expID).WithPeopleCount(1).BuildRequestMap()
		require.Equal(t, http.StatusCreated, httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body).Code)
		require.Equal(t, http.StatusConflict, httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body).Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, w.Code)
		out := w.Body.String()
		require.True(t, strings.Contains(out, `highway_reservations_total{outcome="created"}`), out)
		require.True(t, strings.Contains(out, `highway_reservations_total{outcome="conflict"}`), out)
		require.True(t, strings.Contains(out, `route="/bookings"`), out)
	})
}
