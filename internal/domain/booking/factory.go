package booking

import (
	"errors"

	"highway-booking/internal/domain/experience"
	"highway-booking/internal/pkg/clock"
)

var ErrSlotNotOnExperience = errors.New("slot does not belong to experience")

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking prices the request and snapshots the experience and slot.
// Capacity is not checked here; the store decrements it atomically.
func (f *Factory) CreateBooking(
	exp *experience.Experience,
	slotID experience.SlotID,
	customer Customer,
	people PeopleCount,
	promoCode *string,
) (*Booking, error) {
	slot, ok := exp.FindSlot(slotID)
	if !ok {
		return nil, ErrSlotNotOnExperience
	}

	quote, err := f.PriceCalculator.Quote(exp.PricePerPerson(), people, promoCode)
	if err != nil {
		return nil, err
	}

	snapshot := Snapshot{
		ExperienceID:    exp.ID(),
		ExperienceTitle: exp.Title(),
		SlotID:          slot.SlotID(),
		Date:            slot.Date(),
		Timeslot:        slot.Timeslot(),
	}

	return NewBooking(customer, snapshot, people, quote, f.Clock.Now())
}
