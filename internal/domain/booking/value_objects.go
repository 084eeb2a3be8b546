package booking

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrInvalidName  = errors.New("attendee name must not be empty")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidDOB   = errors.New("invalid date of birth")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const dobLayout = "2006-01-02"

// Attendee is the person claiming a seat. Immutable once created.
type Attendee struct {
	name        string
	email       string
	dateOfBirth string
}

func NewAttendee(name, email, dateOfBirth string) (Attendee, error) {
	if name == "" {
		return Attendee{}, ErrInvalidName
	}
	if !emailPattern.MatchString(email) {
		return Attendee{}, ErrInvalidEmail
	}
	if _, err := time.Parse(dobLayout, dateOfBirth); err != nil {
		return Attendee{}, ErrInvalidDOB
	}
	return Attendee{name: name, email: email, dateOfBirth: dateOfBirth}, nil
}

// ReconstructAttendee rebuilds the value object from a stored row without
// re-running creation-time validation.
func ReconstructAttendee(name, email, dateOfBirth string) Attendee {
	return Attendee{name: name, email: email, dateOfBirth: dateOfBirth}
}

func (a Attendee) Name() string        { return a.name }
func (a Attendee) Email() string       { return a.email }
func (a Attendee) DateOfBirth() string { return a.dateOfBirth }

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

var ErrInvalidStatus = errors.New("invalid booking status")

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPaid, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}
