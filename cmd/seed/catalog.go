package main

import (
	"highway-booking/internal/domain/experience"

	"github.com/shopspring/decimal"
)

type slotSeed struct {
	slotID   string
	date     string
	timeslot string
	capacity int
}

type experienceSeed struct {
	title          string
	location       string
	description    string
	pricePerPerson int64
	imageURL       string
	rating         string
	reviewsCount   int
	slots          []slotSeed
}

var sampleCatalog = []experienceSeed{
	{
		title:          "Sunrise Hot Air Balloon Ride",
		location:       "Cappadocia, Turkey",
		description:    "Float over the fairy chimneys at sunrise and enjoy panoramic views with a gentle landing breakfast.",
		pricePerPerson: 250,
		imageURL:       "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?q=80&w=1600&auto=format&fit=crop",
		rating:         "4.9",
		reviewsCount:   312,
		slots: []slotSeed{
			{slotID: "slot-1", date: "2025-11-05", timeslot: "05:00 - 07:00", capacity: 8},
			{slotID: "slot-2", date: "2025-11-06", timeslot: "05:00 - 07:00", capacity: 8},
			{slotID: "slot-3", date: "2025-11-07", timeslot: "05:00 - 07:00", capacity: 4},
		},
	},
	{
		title:          "Northern Lights Snowmobile Safari",
		location:       "Tromsø, Norway",
		description:    "Chase the aurora borealis across frozen lakes and pristine forests with expert guides.",
		pricePerPerson: 180,
		imageURL:       "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?q=80&w=1600&auto=format&fit=crop",
		rating:         "4.8",
		reviewsCount:   221,
		slots: []slotSeed{
			{slotID: "slot-1", date: "2025-12-10", timeslot: "21:00 - 23:00", capacity: 10},
			{slotID: "slot-2", date: "2025-12-11", timeslot: "21:00 - 23:00", capacity: 10},
		},
	},
	{
		title:          "City Cycling and Food Tour",
		location:       "Kyoto, Japan",
		description:    "Discover hidden alleys, local markets, and taste authentic street food while cycling through Kyoto.",
		pricePerPerson: 75,
		imageURL:       "https://images.unsplash.com/photo-1469474968028-56623f02e42e?q=80&w=1600&auto=format&fit=crop",
		rating:         "4.7",
		reviewsCount:   540,
		slots: []slotSeed{
			{slotID: "slot-1", date: "2025-11-15", timeslot: "09:00 - 12:00", capacity: 12},
			{slotID: "slot-2", date: "2025-11-16", timeslot: "09:00 - 12:00", capacity: 12},
		},
	},
}

func buildCatalog(seeds []experienceSeed) ([]*experience.Experience, error) {
	out := make([]*experience.Experience, 0, len(seeds))
	for _, es := range seeds {
		slots := make([]experience.Slot, 0, len(es.slots))
		for _, ss := range es.slots {
			d, err := experience.ParseDate(ss.date)
			if err != nil {
				return nil, err
			}
			slot, err := experience.NewSlot(ss.slotID, d, ss.timeslot, ss.capacity)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}

		rating, err := decimal.NewFromString(es.rating)
		if err != nil {
			return nil, err
		}
		exp, err := experience.NewExperience(
			es.title, es.location, es.description,
			decimal.NewFromInt(es.pricePerPerson),
			es.imageURL, rating, es.reviewsCount, slots,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, nil
}
