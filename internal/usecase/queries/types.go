package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExperienceSummaryView is one row of the catalog listing.
type ExperienceSummaryView struct {
	ID             int64
	Title          string
	Location       string
	Description    string
	PricePerPerson decimal.Decimal
	ImageURL       string `copier:"ImageUrl"`
	Rating         decimal.Decimal
	ReviewsCount   int
	TotalCapacity  int
}

type SlotView struct {
	ID       int64
	SlotID   string
	Date     time.Time
	Timeslot string
	Capacity int
}

// ExperienceView is an experience with its slots ordered by date, then timeslot.
type ExperienceView struct {
	ID             int64
	Title          string
	Location       string
	Description    string
	PricePerPerson decimal.Decimal
	ImageURL       string `copier:"ImageUrl"`
	Rating         decimal.Decimal
	ReviewsCount   int
	Slots          []SlotView `copier:"-"`
	CreatedAt      time.Time  `copier:"-"`
	UpdatedAt      time.Time  `copier:"-"`
}

type PromoValidationView struct {
	Valid   bool
	Code    string
	Type    string
	Value   decimal.Decimal
	Message string
	// preview, set only when an amount was supplied and the code is valid
	Discount    *decimal.Decimal
	FinalAmount *decimal.Decimal
}
