package experience

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle       = errors.New("experience title cannot be empty")
	ErrTitleTooLong     = errors.New("experience title is too long (max 255 characters)")
	ErrEmptyLocation    = errors.New("experience location cannot be empty")
	ErrNonPositivePrice = errors.New("price per person must be positive")
	ErrDuplicateSlotID  = errors.New("slot id already exists on this experience")
)

const (
	MaxTitleLength = 255
)

type Slot struct {
	slotID   SlotID
	date     Date
	timeslot string
	capacity Capacity
}

func NewSlot(slotID string, date Date, timeslot string, capacity int) (Slot, error) {
	id, err := NewSlotID(slotID)
	if err != nil {
		return Slot{}, err
	}
	timeslot = strings.TrimSpace(timeslot)
	if timeslot == "" {
		return Slot{}, ErrEmptyTimeslot
	}
	c, err := NewCapacity(capacity)
	if err != nil {
		return Slot{}, err
	}
	return Slot{slotID: id, date: date, timeslot: timeslot, capacity: c}, nil
}

func (s Slot) SlotID() SlotID     { return s.slotID }
func (s Slot) Date() Date         { return s.date }
func (s Slot) Timeslot() string   { return s.timeslot }
func (s Slot) Capacity() Capacity { return s.capacity }

// Experience owns its slots; deleting it removes them.
type Experience struct {
	id             ID
	title          string
	location       string
	description    string
	pricePerPerson decimal.Decimal
	imageURL       string
	rating         decimal.Decimal
	reviewsCount   int
	slots          []Slot
}

// NewExperience validates a not-yet-persisted experience; the id is assigned by the store.
func NewExperience(
	title, location, description string,
	pricePerPerson decimal.Decimal,
	imageURL string,
	rating decimal.Decimal,
	reviewsCount int,
	slots []Slot,
) (*Experience, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if !pricePerPerson.IsPositive() {
		return nil, ErrNonPositivePrice
	}

	seen := make(map[SlotID]struct{}, len(slots))
	for _, s := range slots {
		if _, dup := seen[s.slotID]; dup {
			return nil, ErrDuplicateSlotID
		}
		seen[s.slotID] = struct{}{}
	}

	e := &Experience{
		title:          title,
		location:       location,
		description:    description,
		pricePerPerson: pricePerPerson,
		imageURL:       imageURL,
		rating:         rating,
		reviewsCount:   reviewsCount,
		slots:          append([]Slot(nil), slots...),
	}
	e.sortSlots()
	return e, nil
}

func ReconstructExperience(
	id ID,
	title, location, description string,
	pricePerPerson decimal.Decimal,
	imageURL string,
	rating decimal.Decimal,
	reviewsCount int,
	slots []Slot,
) *Experience {
	e := &Experience{
		id:             id,
		title:          title,
		location:       location,
		description:    description,
		pricePerPerson: pricePerPerson,
		imageURL:       imageURL,
		rating:         rating,
		reviewsCount:   reviewsCount,
		slots:          slots,
	}
	e.sortSlots()
	return e
}

// FindSlot resolves a slot by its id within this experience.
func (e *Experience) FindSlot(slotID SlotID) (Slot, bool) {
	for _, s := range e.slots {
		if s.slotID == slotID {
			return s, true
		}
	}
	return Slot{}, false
}

func (e *Experience) TotalCapacity() int {
	total := 0
	for _, s := range e.slots {
		total += s.capacity.Int()
	}
	return total
}

// slots are kept ordered by date, then timeslot
func (e *Experience) sortSlots() {
	sort.SliceStable(e.slots, func(i, j int) bool {
		a, b := e.slots[i], e.slots[j]
		if !a.date.Equal(b.date) {
			return a.date.Before(b.date)
		}
		return a.timeslot < b.timeslot
	})
}

func (e *Experience) ID() ID                          { return e.id }
func (e *Experience) Title() string                   { return e.title }
func (e *Experience) Location() string                { return e.location }
func (e *Experience) Description() string             { return e.description }
func (e *Experience) PricePerPerson() decimal.Decimal { return e.pricePerPerson }
func (e *Experience) ImageURL() string                { return e.imageURL }
func (e *Experience) Rating() decimal.Decimal         { return e.rating }
func (e *Experience) ReviewsCount() int               { return e.reviewsCount }
func (e *Experience) Slots() []Slot                   { return e.slots }
