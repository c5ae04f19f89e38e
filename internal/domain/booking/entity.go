package booking

import (
	"time"

	"highway-booking/internal/domain/experience"

	"github.com/shopspring/decimal"
)

// Snapshot freezes the catalog data a booking was made against.
type Snapshot struct {
	ExperienceID    experience.ID
	ExperienceTitle string
	SlotID          experience.SlotID
	Date            experience.Date
	Timeslot        string
}

// Booking is immutable once created.
type Booking struct {
	id          int64
	customer    Customer
	snapshot    Snapshot
	peopleCount PeopleCount
	amount      decimal.Decimal
	discount    decimal.Decimal
	finalAmount decimal.Decimal
	promoCode   *string
	createdAt   time.Time
}

func NewBooking(customer Customer, snapshot Snapshot, people PeopleCount, quote Quote, now time.Time) (*Booking, error) {
	if quote.Amount.IsNegative() || quote.Discount.IsNegative() || quote.FinalAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Booking{
		customer:    customer,
		snapshot:    snapshot,
		peopleCount: people,
		amount:      quote.Amount,
		discount:    quote.Discount,
		finalAmount: quote.FinalAmount,
		promoCode:   quote.PromoCode,
		createdAt:   now,
	}, nil
}

func ReconstructBooking(
	id int64,
	customer Customer,
	snapshot Snapshot,
	people PeopleCount,
	amount, discount, finalAmount decimal.Decimal,
	promoCode *string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		customer:    customer,
		snapshot:    snapshot,
		peopleCount: people,
		amount:      amount,
		discount:    discount,
		finalAmount: finalAmount,
		promoCode:   promoCode,
		createdAt:   createdAt,
	}
}

func (b *Booking) ID() int64                    { return b.id }
func (b *Booking) Customer() Customer           { return b.customer }
func (b *Booking) Snapshot() Snapshot           { return b.snapshot }
func (b *Booking) PeopleCount() PeopleCount     { return b.peopleCount }
func (b *Booking) Amount() decimal.Decimal      { return b.amount }
func (b *Booking) Discount() decimal.Decimal    { return b.discount }
func (b *Booking) FinalAmount() decimal.Decimal { return b.finalAmount }
func (b *Booking) PromoCode() *string           { return b.promoCode }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
