package shared

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExperienceSnapshot is the write-side view of an experience as read inside a transaction.
type ExperienceSnapshot struct {
	ID             int64
	Title          string
	Location       string
	Description    string
	PricePerPerson decimal.Decimal
	ImageURL       string
	Rating         decimal.Decimal
	ReviewsCount   int
	Slots          []SlotSnapshot
}

type SlotSnapshot struct {
	SlotID   string
	Date     time.Time
	Timeslot string
	Capacity int
}
