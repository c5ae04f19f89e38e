package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"highway-booking/internal/domain/booking"
	"highway-booking/internal/domain/experience"
	"highway-booking/internal/infra"
	"highway-booking/internal/pkg/errs"
	"highway-booking/internal/usecase/shared"
)

var (
	ErrInvalidBooking          = errs.New("invalid booking")
	ErrExperienceNotFound      = errs.New("experience not found")
	ErrSlotNotFound            = errs.New("slot not found")
	ErrInsufficientCapacity    = errs.New("slot is sold out or has insufficient seats")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const outcomeCreated = "created"

type BookingCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *booking.Factory
	observer ReservationObserver
}

func NewBookingCommands(uow shared.UnitOfWork, factory *booking.Factory, observer ReservationObserver) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		factory:  factory,
		observer: observer,
	}
}

// Reserve validates the request, then decrements slot capacity and appends the
// booking in one transaction. Either both effects persist or neither does.
func (b *bookingCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	start := time.Now()
	result, err := b.reserve(ctx, in)

	outcome := outcomeCreated
	if err != nil {
		outcome = errs.CategoryName(err)
	}
	b.observer.ObserveReservation(outcome, time.Since(start))

	return result, err
}

type validatedReservation struct {
	experienceID experience.ID
	slotID       experience.SlotID
	people       booking.PeopleCount
	customer     booking.Customer
	promoCode    *string
}

func (b *bookingCommandsImpl) reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	req, err := validateReservation(in)
	if err != nil {
		return nil, fail(err, ErrInvalidBooking, errs.ErrInvalid)
	}

	var result *ReserveResult
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// the closure may run again after a deadlock; reset everything it produces
		result = nil

		snap, err := tx.Reads().ExperienceWithSlots(ctx, req.experienceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return fail(err, ErrExperienceNotFound, errs.ErrNotFound)
			}
			return fail(err, ErrDatabaseOperationFailed, errs.ErrInternal)
		}

		exp, err := experienceFromSnapshot(snap)
		if err != nil {
			return fail(err, ErrDatabaseOperationFailed, errs.ErrInternal)
		}

		if _, ok := exp.FindSlot(req.slotID); !ok {
			return fail(nil, ErrSlotNotFound, errs.ErrNotFound)
		}

		if err := tx.Slots().TakeSeats(ctx, tx.DB(), req.experienceID, req.slotID, req.people.Int()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return fail(err, ErrInsufficientCapacity, errs.ErrConflict)
			}
			return fail(err, ErrDatabaseOperationFailed, errs.ErrInternal)
		}

		// input was validated up front; anything failing here is bad catalog data
		bk, err := b.factory.CreateBooking(exp, req.slotID, req.customer, req.people, req.promoCode)
		if err != nil {
			return fail(err, ErrDatabaseOperationFailed, errs.ErrInternal)
		}

		bookingID, createdAt, err := tx.Bookings().Create(ctx, tx.DB(), bk)
		if err != nil {
			return fail(err, ErrDatabaseOperationFailed, errs.ErrInternal)
		}

		snapshot := bk.Snapshot()
		result = &ReserveResult{
			BookingID:       bookingID,
			FinalAmount:     bk.FinalAmount(),
			ExperienceTitle: snapshot.ExperienceTitle,
			Date:            snapshot.Date.Time(),
			Timeslot:        snapshot.Timeslot,
			CreatedAt:       createdAt,
		}
		return nil
	})
	if err != nil {
		if isClassified(err) {
			return nil, err
		}
		// begin/commit failures and cancellation
		slog.Error("reservation transaction failed", "error", err.Error())
		return nil, fail(err, ErrDatabaseOperationFailed, errs.ErrInternal)
	}

	return result, nil
}

func validateReservation(in ReserveInput) (validatedReservation, error) {
	expID, err := experience.NewID(in.ExperienceID)
	if err != nil {
		return validatedReservation{}, err
	}
	slotID, err := experience.NewSlotID(in.SlotID)
	if err != nil {
		return validatedReservation{}, err
	}
	people, err := booking.NewPeopleCount(in.PeopleCount)
	if err != nil {
		return validatedReservation{}, err
	}
	customer, err := booking.NewCustomer(in.Name, in.Email)
	if err != nil {
		return validatedReservation{}, err
	}

	return validatedReservation{
		experienceID: expID,
		slotID:       slotID,
		people:       people,
		customer:     customer,
		promoCode:    in.PromoCode,
	}, nil
}

func experienceFromSnapshot(snap *shared.ExperienceSnapshot) (*experience.Experience, error) {
	slots := make([]experience.Slot, 0, len(snap.Slots))
	for _, s := range snap.Slots {
		slot, err := experience.NewSlot(s.SlotID, experience.NewDate(s.Date), s.Timeslot, s.Capacity)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return experience.ReconstructExperience(
		experience.ID(snap.ID),
		snap.Title,
		snap.Location,
		snap.Description,
		snap.PricePerPerson,
		snap.ImageURL,
		snap.Rating,
		snap.ReviewsCount,
		slots,
	), nil
}

// fail tags cause with a use-case sentinel and its category.
func fail(cause, sentinel, category error) error {
	return errs.Mark(errs.Mark(cause, sentinel), category)
}

func isClassified(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidBooking,
		ErrExperienceNotFound,
		ErrSlotNotFound,
		ErrInsufficientCapacity,
		ErrDatabaseOperationFailed,
	} {
		if errs.Is(err, sentinel) {
			return true
		}
	}
	return false
}
