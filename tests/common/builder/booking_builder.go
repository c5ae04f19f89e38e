//go:build unit || e2e

package builder

import (
	"time"

	"highway-booking/internal/domain/booking"
	"highway-booking/internal/domain/experience"
	reqdto "highway-booking/internal/handler/dto/request"
	"highway-booking/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	Name         string
	Email        string
	ExperienceID int64
	SlotID       string
	PeopleCount  int
	PromoCode    *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Name:         "Jane Traveller",
		Email:        "jane@example.com",
		ExperienceID: 1,
		SlotID:       "slot-1",
		PeopleCount:  2,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:         b.Name,
		Email:        b.Email,
		ExperienceID: reqdto.FlexibleID(b.ExperienceID),
		SlotID:       b.SlotID,
		PeopleCount:  b.PeopleCount,
		PromoCode:    b.PromoCode,
	}
}

// BuildRequestMap is the JSON body a client sends.
func (b *BookingBuilder) BuildRequestMap() map[string]any {
	m := map[string]any{
		"name":         b.Name,
		"email":        b.Email,
		"experienceId": b.ExperienceID,
		"slotId":       b.SlotID,
		"peopleCount":  b.PeopleCount,
	}
	if b.PromoCode != nil {
		m["promoCode"] = *b.PromoCode
	}
	return m
}

func (b *BookingBuilder) BuildInput() commands.ReserveInput {
	return commands.ReserveInput{
		ExperienceID: b.ExperienceID,
		SlotID:       b.SlotID,
		PeopleCount:  b.PeopleCount,
		Name:         b.Name,
		Email:        b.Email,
		PromoCode:    b.PromoCode,
	}
}

func (b *BookingBuilder) BuildResult(bookingID int64, finalAmount string, title string, date time.Time, timeslot string) *commands.ReserveResult {
	return &commands.ReserveResult{
		BookingID:       bookingID,
		FinalAmount:     decimal.RequireFromString(finalAmount),
		ExperienceTitle: title,
		Date:            date,
		Timeslot:        timeslot,
		CreatedAt:       date,
	}
}

// BuildDomain prices nothing; amounts are taken as given.
func (b *BookingBuilder) BuildDomain(title string, date time.Time, timeslot string, amount, discount, final string) (*booking.Booking, error) {
	customer, err := booking.NewCustomer(b.Name, b.Email)
	if err != nil {
		return nil, err
	}
	people, err := booking.NewPeopleCount(b.PeopleCount)
	if err != nil {
		return nil, err
	}
	snapshot := booking.Snapshot{
		ExperienceID:    experience.ID(b.ExperienceID),
		ExperienceTitle: title,
		SlotID:          experience.SlotID(b.SlotID),
		Date:            experience.NewDate(date),
		Timeslot:        timeslot,
	}
	quote := booking.Quote{
		Amount:      decimal.RequireFromString(amount),
		Discount:    decimal.RequireFromString(discount),
		FinalAmount: decimal.RequireFromString(final),
		PromoCode:   b.PromoCode,
	}
	return booking.NewBooking(customer, snapshot, people, quote, date)
}

// Fluent builder methods
func (b *BookingBuilder) WithExperienceID(id int64) *BookingBuilder {
	b.ExperienceID = id
	return b
}

func (b *BookingBuilder) WithSlotID(slotID string) *BookingBuilder {
	b.SlotID = slotID
	return b
}

func (b *BookingBuilder) WithPeopleCount(n int) *BookingBuilder {
	b.PeopleCount = n
	return b
}

func (b *BookingBuilder) WithPromoCode(code string) *BookingBuilder {
	b.PromoCode = &code
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}
