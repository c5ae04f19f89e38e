package booking

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrNameTooShort       = errors.New("name must be at least 2 characters")
	ErrNameTooLong        = errors.New("name is too long (max 255 characters)")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPeopleOutOfRange   = errors.New("people count must be between 1 and 10")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrNonPositiveUnitFee = errors.New("price per person must be positive")
)

const (
	MinNameLength  = 2
	MaxNameLength  = 255
	MinPeopleCount = 1
	MaxPeopleCount = 10
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Customer struct {
	name  string
	email string
}

func NewCustomer(name, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < MinNameLength {
		return Customer{}, ErrNameTooShort
	}
	if n > MaxNameLength {
		return Customer{}, ErrNameTooLong
	}

	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidEmail
	}

	return Customer{name: name, email: email}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }

type PeopleCount int

func NewPeopleCount(n int) (PeopleCount, error) {
	if n < MinPeopleCount || n > MaxPeopleCount {
		return 0, ErrPeopleOutOfRange
	}
	return PeopleCount(n), nil
}

func (p PeopleCount) Int() int {
	return int(p)
}
