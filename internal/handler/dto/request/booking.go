package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"highway-booking/internal/domain/promo"
	"highway-booking/internal/pkg/ptr"
	"highway-booking/internal/usecase/commands"
)

var errInvalidID = errors.New("id must be a positive integer or a numeric string")

// FlexibleID accepts 12 and "12" and normalises both to int64.
type FlexibleID int64

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errInvalidID
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return errInvalidID
	}
	*f = FlexibleID(v)
	return nil
}

func (f FlexibleID) Int64() int64 {
	return int64(f)
}

type CreateBookingRequest struct {
	Name         string     `json:"name" binding:"required,trimmedmin=2,max=255"`
	Email        string     `json:"email" binding:"required,email,max=255"`
	ExperienceID FlexibleID `json:"experienceId" binding:"required,gt=0"`
	SlotID       string     `json:"slotId" binding:"required,trimmedmin=1,max=50"`
	PeopleCount  int        `json:"peopleCount" binding:"required,min=1,max=10"`
	PromoCode    *string    `json:"promoCode,omitempty" binding:"omitempty,max=50"`
}

// GetPromoCode returns the trimmed, uppercased code, or nil for absent/blank.
func (r CreateBookingRequest) GetPromoCode() *string {
	code := promo.NormalizeCode(ptr.ValueOr(r.PromoCode, ""))
	if code == "" {
		return nil
	}
	return &code
}

func (r CreateBookingRequest) ToInput() commands.ReserveInput {
	return commands.ReserveInput{
		ExperienceID: r.ExperienceID.Int64(),
		SlotID:       strings.TrimSpace(r.SlotID),
		PeopleCount:  r.PeopleCount,
		Name:         strings.TrimSpace(r.Name),
		Email:        strings.TrimSpace(r.Email),
		PromoCode:    r.GetPromoCode(),
	}
}
