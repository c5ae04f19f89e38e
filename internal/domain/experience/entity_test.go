//go:build unit

package experience_test

import (
	"testing"

	"highway-booking/internal/domain/experience"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) experience.Date {
	t.Helper()
	d, err := experience.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustSlot(t *testing.T, id, date, timeslot string, capacity int) experience.Slot {
	t.Helper()
	s, err := experience.NewSlot(id, mustDate(t, date), timeslot, capacity)
	require.NoError(t, err)
	return s
}

func TestNewExperience(t *testing.T) {
	price := decimal.NewFromInt(75)
	rating := decimal.RequireFromString("4.7")

	t.Run("slots are ordered by date then timeslot", func(t *testing.T) {
		slots := []experience.Slot{
			mustSlot(t, "c", "2025-11-07", "09:00 - 11:00", 10),
			mustSlot(t, "b", "2025-11-05", "14:00 - 16:00", 10),
			mustSlot(t, "a", "2025-11-05", "09:00 - 11:00", 10),
		}
		e, err := experience.NewExperience("Kyoto Tea Ceremony", "Kyoto, Japan", "", price, "", rating, 0, slots)
		require.NoError(t, err)

		var ids []string
		for _, s := range e.Slots() {
			ids = append(ids, s.SlotID().String())
		}
		assert.Equal(t, []string{"a", "b", "c"}, ids)
		assert.Equal(t, 30, e.TotalCapacity())
	})

	t.Run("no slots has zero capacity", func(t *testing.T) {
		e, err := experience.NewExperience("Kyoto Tea Ceremony", "Kyoto, Japan", "", price, "", rating, 0, nil)
		require.NoError(t, err)
		assert.Zero(t, e.TotalCapacity())
	})

	tests := []struct {
		name     string
		title    string
		location string
		price    decimal.Decimal
		slots    []experience.Slot
		errIs    error
	}{
		{name: "empty title", title: "  ", location: "Kyoto", price: price, errIs: experience.ErrEmptyTitle},
		{name: "empty location", title: "Tea", location: "", price: price, errIs: experience.ErrEmptyLocation},
		{name: "zero price", title: "Tea", location: "Kyoto", price: decimal.Zero, errIs: experience.ErrNonPositivePrice},
		{
			name: "duplicate slot id", title: "Tea", location: "Kyoto", price: price,
			slots: []experience.Slot{
				mustSlot(t, "dup", "2025-11-05", "09:00 - 11:00", 1),
				mustSlot(t, "dup", "2025-11-06", "09:00 - 11:00", 1),
			},
			errIs: experience.ErrDuplicateSlotID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := experience.NewExperience(tt.title, tt.location, "", tt.price, "", rating, 0, tt.slots)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestExperience_FindSlot(t *testing.T) {
	e := experience.ReconstructExperience(3, "Kyoto Tea Ceremony", "Kyoto, Japan", "", decimal.NewFromInt(75), "", decimal.Zero, 0,
		[]experience.Slot{mustSlot(t, "slot-1", "2025-11-05", "09:00 - 11:00", 6)})

	s, ok := e.FindSlot("slot-1")
	require.True(t, ok)
	assert.Equal(t, 6, s.Capacity().Int())

	_, ok = e.FindSlot("slot-2")
	assert.False(t, ok)
}

func TestValueObjects(t *testing.T) {
	t.Run("experience id", func(t *testing.T) {
		_, err := experience.NewID(0)
		assert.ErrorIs(t, err, experience.ErrInvalidExperienceID)
		id, err := experience.NewID(12)
		require.NoError(t, err)
		assert.Equal(t, int64(12), id.Int64())
	})

	t.Run("slot id", func(t *testing.T) {
		_, err := experience.NewSlotID(" ")
		assert.ErrorIs(t, err, experience.ErrEmptySlotID)
		_, err = experience.NewSlotID(string(make([]byte, experience.MaxSlotIDLength+1)))
		assert.Error(t, err)
		id, err := experience.NewSlotID(" slot-1 ")
		require.NoError(t, err)
		assert.Equal(t, "slot-1", id.String())
	})

	t.Run("capacity", func(t *testing.T) {
		_, err := experience.NewCapacity(-1)
		assert.ErrorIs(t, err, experience.ErrNegativeCapacity)
		c, err := experience.NewCapacity(3)
		require.NoError(t, err)
		assert.True(t, c.Allows(3))
		assert.False(t, c.Allows(4))
		assert.False(t, c.Allows(0))
	})

	t.Run("date drops the time of day", func(t *testing.T) {
		d := mustDate(t, "2025-11-05")
		assert.Equal(t, "2025-11-05", d.String())
		_, err := experience.ParseDate("05/11/2025")
		assert.Error(t, err)
	})

	t.Run("slot requires a timeslot", func(t *testing.T) {
		_, err := experience.NewSlot("slot-1", mustDate(t, "2025-11-05"), " ", 1)
		assert.ErrorIs(t, err, experience.ErrEmptyTimeslot)
	})
}
