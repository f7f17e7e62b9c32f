package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrRoomUnavailable    = errors.New("room is not available for the selected dates")
	ErrInvalidGuestCount  = errors.New("number of guests must be at least 1")
	ErrBookingNotEditable = errors.New("booking can no longer be modified")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

var allStatuses = []Status{
	StatusPending, StatusConfirmed, StatusCheckedIn,
	StatusCheckedOut, StatusCancelled, StatusNoShow,
}

var allowedTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: nil,
	StatusCancelled:  nil,
	StatusNoShow:     nil,
}

func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(allowedTransitions[s]) == 0
}

// Blocks reports whether a booking in this status occupies its room.
func (s Status) Blocks() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// TransitionError matches ErrInvalidTransition under errors.Is.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
