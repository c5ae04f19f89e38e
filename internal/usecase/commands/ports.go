package commands

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReserveInput is the raw checkout request. Nothing here is trusted yet.
type ReserveInput struct {
	ExperienceID int64
	SlotID       string
	PeopleCount  int
	Name         string
	Email        string
	// nil or blank means no promo
	PromoCode *string
}

type ReserveResult struct {
	BookingID       int64
	FinalAmount     decimal.Decimal
	ExperienceTitle string
	Date            time.Time
	Timeslot        string
	CreatedAt       time.Time
}

type ReservationObserver interface {
	ObserveReservation(outcome string, elapsed time.Duration)
}
