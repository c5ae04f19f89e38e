//go:build unit || e2e

package builder

import (
	"time"

	"highway-booking/internal/domain/experience"
	sqlc "highway-booking/internal/infra/sqlc/generated"
	"highway-booking/internal/usecase/queries"
	"highway-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type SlotFixture struct {
	ID       int64
	SlotID   string
	Date     time.Time
	Timeslot string
	Capacity int
}

type ExperienceBuilder struct {
	ID             int64
	Title          string
	Location       string
	Description    string
	PricePerPerson decimal.Decimal
	ImageURL       string
	Rating         decimal.Decimal
	ReviewsCount   int
	Slots          []SlotFixture
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewExperienceBuilder() *ExperienceBuilder {
	now := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	return &ExperienceBuilder{
		ID:             1,
		Title:          "Sunrise Hot Air Balloon Ride",
		Location:       "Cappadocia, Turkey",
		Description:    "Float over the fairy chimneys at sunrise.",
		PricePerPerson: decimal.NewFromInt(100),
		ImageURL:       "https://example.com/balloon.jpg",
		Rating:         decimal.RequireFromString("4.9"),
		ReviewsCount:   312,
		Slots: []SlotFixture{
			{ID: 1, SlotID: "slot-1", Date: time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), Timeslot: "05:00 - 07:00", Capacity: 8},
			{ID: 2, SlotID: "slot-2", Date: time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC), Timeslot: "05:00 - 07:00", Capacity: 4},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ExperienceBuilder) With(mutate func(*ExperienceBuilder)) *ExperienceBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ExperienceBuilder) BuildDomain() (*experience.Experience, error) {
	slots, err := b.domainSlots()
	if err != nil {
		return nil, err
	}
	return experience.NewExperience(b.Title, b.Location, b.Description, b.PricePerPerson, b.ImageURL, b.Rating, b.ReviewsCount, slots)
}

func (b *ExperienceBuilder) MustBuildDomain() *experience.Experience {
	e, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return e
}

func (b *ExperienceBuilder) BuildSnapshot() *shared.ExperienceSnapshot {
	slots := make([]shared.SlotSnapshot, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = shared.SlotSnapshot{SlotID: s.SlotID, Date: s.Date, Timeslot: s.Timeslot, Capacity: s.Capacity}
	}
	return &shared.ExperienceSnapshot{
		ID:             b.ID,
		Title:          b.Title,
		Location:       b.Location,
		Description:    b.Description,
		PricePerPerson: b.PricePerPerson,
		ImageURL:       b.ImageURL,
		Rating:         b.Rating,
		ReviewsCount:   b.ReviewsCount,
		Slots:          slots,
	}
}

func (b *ExperienceBuilder) BuildInfra() sqlc.Experiences {
	return sqlc.Experiences{
		ID:             b.ID,
		Title:          b.Title,
		Location:       b.Location,
		Description:    b.Description,
		PricePerPerson: b.PricePerPerson,
		ImageUrl:       b.ImageURL,
		Rating:         b.Rating,
		ReviewsCount:   int32(b.ReviewsCount), // #nosec G115 -- fixture values are small
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *ExperienceBuilder) BuildInfraSlots() []sqlc.Slots {
	out := make([]sqlc.Slots, len(b.Slots))
	for i, s := range b.Slots {
		out[i] = sqlc.Slots{
			ID:           s.ID,
			ExperienceID: b.ID,
			SlotID:       s.SlotID,
			Date:         pgtype.Date{Time: s.Date, Valid: true},
			Timeslot:     s.Timeslot,
			Capacity:     int32(s.Capacity), // #nosec G115 -- fixture values are small
		}
	}
	return out
}

func (b *ExperienceBuilder) BuildSummaryRow() sqlc.ListExperienceSummariesRow {
	return sqlc.ListExperienceSummariesRow{
		ID:             b.ID,
		Title:          b.Title,
		Location:       b.Location,
		Description:    b.Description,
		PricePerPerson: b.PricePerPerson,
		ImageUrl:       b.ImageURL,
		Rating:         b.Rating,
		ReviewsCount:   int32(b.ReviewsCount), // #nosec G115 -- fixture values are small
		TotalCapacity:  int64(b.totalCapacity()),
	}
}

func (b *ExperienceBuilder) BuildView() *queries.ExperienceView {
	slots := make([]queries.SlotView, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = queries.SlotView{ID: s.ID, SlotID: s.SlotID, Date: s.Date, Timeslot: s.Timeslot, Capacity: s.Capacity}
	}
	return &queries.ExperienceView{
		ID:             b.ID,
		Title:          b.Title,
		Location:       b.Location,
		Description:    b.Description,
		PricePerPerson: b.PricePerPerson,
		ImageURL:       b.ImageURL,
		Rating:         b.Rating,
		ReviewsCount:   b.ReviewsCount,
		Slots:          slots,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ExperienceBuilder) BuildSummaryView() *queries.ExperienceSummaryView {
	return &queries.ExperienceSummaryView{
		ID:             b.ID,
		Title:          b.Title,
		Location:       b.Location,
		Description:    b.Description,
		PricePerPerson: b.PricePerPerson,
		ImageURL:       b.ImageURL,
		Rating:         b.Rating,
		ReviewsCount:   b.ReviewsCount,
		TotalCapacity:  b.totalCapacity(),
	}
}

// Fluent builder methods
func (b *ExperienceBuilder) WithID(id int64) *ExperienceBuilder {
	b.ID = id
	return b
}

func (b *ExperienceBuilder) WithTitle(title string) *ExperienceBuilder {
	b.Title = title
	return b
}

func (b *ExperienceBuilder) WithPrice(price string) *ExperienceBuilder {
	b.PricePerPerson = decimal.RequireFromString(price)
	return b
}

func (b *ExperienceBuilder) WithSlots(slots ...SlotFixture) *ExperienceBuilder {
	b.Slots = slots
	return b
}

func (b *ExperienceBuilder) WithoutSlots() *ExperienceBuilder {
	b.Slots = nil
	return b
}

func (b *ExperienceBuilder) totalCapacity() int {
	total := 0
	for _, s := range b.Slots {
		total += s.Capacity
	}
	return total
}

func (b *ExperienceBuilder) domainSlots() ([]experience.Slot, error) {
	slots := make([]experience.Slot, 0, len(b.Slots))
	for _, s := range b.Slots {
		slot, err := experience.NewSlot(s.SlotID, experience.NewDate(s.Date), s.Timeslot, s.Capacity)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
