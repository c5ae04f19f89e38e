package experience

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidExperienceID = errors.New("experience id must be a positive integer")
	ErrEmptySlotID         = errors.New("slot id cannot be empty")
	ErrSlotIDTooLong       = errors.New("slot id is too long (max 50 characters)")
	ErrNegativeCapacity    = errors.New("capacity cannot be negative")
	ErrEmptyTimeslot       = errors.New("timeslot cannot be empty")
)

const (
	MaxSlotIDLength = 50
	DateLayout      = "2006-01-02"
)

type ID int64

func NewID(v int64) (ID, error) {
	if v <= 0 {
		return 0, ErrInvalidExperienceID
	}
	return ID(v), nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

// SlotID is unique within one experience only.
type SlotID string

func NewSlotID(s string) (SlotID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptySlotID
	}
	if len(s) > MaxSlotIDLength {
		return "", ErrSlotIDTooLong
	}
	return SlotID(s), nil
}

func (s SlotID) String() string {
	return string(s)
}

// Capacity is the number of seats still bookable on a slot.
type Capacity int

func NewCapacity(v int) (Capacity, error) {
	if v < 0 {
		return 0, ErrNegativeCapacity
	}
	return Capacity(v), nil
}

func (c Capacity) Int() int {
	return int(c)
}

func (c Capacity) Allows(seats int) bool {
	return seats > 0 && int(c) >= seats
}

// Date is a calendar day without a time component.
type Date struct {
	t time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}
