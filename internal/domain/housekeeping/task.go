package housekeeping

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTaskTransition = errors.New("invalid task status transition")
	ErrNotAssignee           = errors.New("task is assigned to another user")
)

type Task struct {
	id                 uuid.UUID
	roomID             uuid.UUID
	bookingID          *uuid.UUID
	taskType           TaskType
	priority           Priority
	status             Status
	scheduledDate      time.Time
	assignedTo         *uuid.UUID
	createdBy          *uuid.UUID
	verifiedBy         *uuid.UUID
	notes              string
	completionNotes    string
	verificationNotes  string
	estimatedMinutes   int
	isCheckoutCleaning bool
	startedAt          *time.Time
	completedAt        *time.Time
	verifiedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// CheckoutCleaning is the request a checkout synthesizes for the room it just freed.
type CheckoutCleaning struct {
	RoomID           uuid.UUID
	BookingID        uuid.UUID
	BookingNumber    string
	Priority         Priority
	ScheduledDate    time.Time
	EstimatedMinutes int
	CreatedBy        *uuid.UUID
}

func NewCheckoutCleaningTask(req CheckoutCleaning) *Task {
	bookingID := req.BookingID
	return &Task{
		id:                 uuid.New(),
		roomID:             req.RoomID,
		bookingID:          &bookingID,
		taskType:           TaskTypeCleaning,
		priority:           req.Priority,
		status:             StatusPending,
		scheduledDate:      req.ScheduledDate,
		createdBy:          req.CreatedBy,
		notes:              fmt.Sprintf("Checkout cleaning after booking %s", req.BookingNumber),
		estimatedMinutes:   req.EstimatedMinutes,
		isCheckoutCleaning: true,
	}
}

func ReconstructTask(
	id, roomID uuid.UUID,
	bookingID *uuid.UUID,
	taskType TaskType,
	priority Priority,
	status Status,
	scheduledDate time.Time,
	assignedTo, createdBy, verifiedBy *uuid.UUID,
	notes, completionNotes, verificationNotes string,
	estimatedMinutes int,
	isCheckoutCleaning bool,
	startedAt, completedAt, verifiedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Task {
	return &Task{
		id:                 id,
		roomID:             roomID,
		bookingID:          bookingID,
		taskType:           taskType,
		priority:           priority,
		status:             status,
		scheduledDate:      scheduledDate,
		assignedTo:         assignedTo,
		createdBy:          createdBy,
		verifiedBy:         verifiedBy,
		notes:              notes,
		completionNotes:    completionNotes,
		verificationNotes:  verificationNotes,
		estimatedMinutes:   estimatedMinutes,
		isCheckoutCleaning: isCheckoutCleaning,
		startedAt:          startedAt,
		completedAt:        completedAt,
		verifiedAt:         verifiedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (t *Task) Assign(userID uuid.UUID) error {
	if t.status.IsTerminal() {
		return t.transitionError("assign")
	}
	t.assignedTo = &userID
	return nil
}

// Start claims an unassigned task for the actor.
func (t *Task) Start(actorID uuid.UUID, now time.Time) error {
	if t.status != StatusPending {
		return t.transitionError(StatusInProgress.String())
	}
	if err := t.checkAssignee(actorID); err != nil {
		return err
	}
	t.assignedTo = &actorID
	t.status = StatusInProgress
	t.startedAt = &now
	return nil
}

func (t *Task) Complete(actorID uuid.UUID, notes string, now time.Time) error {
	if t.status != StatusPending && t.status != StatusInProgress {
		return t.transitionError(StatusCompleted.String())
	}
	if err := t.checkAssignee(actorID); err != nil {
		return err
	}
	t.status = StatusCompleted
	t.completedAt = &now
	if notes != "" {
		t.completionNotes = notes
	}
	return nil
}

func (t *Task) Verify(verifierID uuid.UUID, notes string, now time.Time) error {
	if t.status != StatusCompleted {
		return t.transitionError(StatusVerified.String())
	}
	t.status = StatusVerified
	t.verifiedBy = &verifierID
	t.verifiedAt = &now
	if notes != "" {
		t.verificationNotes = notes
	}
	return nil
}

func (t *Task) Fail(notes string) error {
	if t.status.IsTerminal() {
		return t.transitionError(StatusFailed.String())
	}
	t.status = StatusFailed
	if notes != "" {
		t.completionNotes = notes
	}
	return nil
}

func (t *Task) checkAssignee(actorID uuid.UUID) error {
	if t.assignedTo != nil && *t.assignedTo != actorID {
		return ErrNotAssignee
	}
	return nil
}

func (t *Task) transitionError(to string) error {
	return fmt.Errorf("%w: cannot move task from %s to %s", ErrInvalidTaskTransition, t.status, to)
}

func (t *Task) ID() uuid.UUID             { return t.id }
func (t *Task) RoomID() uuid.UUID         { return t.roomID }
func (t *Task) BookingID() *uuid.UUID     { return t.bookingID }
func (t *Task) TaskType() TaskType        { return t.taskType }
func (t *Task) Priority() Priority        { return t.priority }
func (t *Task) Status() Status            { return t.status }
func (t *Task) ScheduledDate() time.Time  { return t.scheduledDate }
func (t *Task) AssignedTo() *uuid.UUID    { return t.assignedTo }
func (t *Task) CreatedBy() *uuid.UUID     { return t.createdBy }
func (t *Task) VerifiedBy() *uuid.UUID    { return t.verifiedBy }
func (t *Task) Notes() string             { return t.notes }
func (t *Task) CompletionNotes() string   { return t.completionNotes }
func (t *Task) VerificationNotes() string { return t.verificationNotes }
func (t *Task) EstimatedMinutes() int     { return t.estimatedMinutes }
func (t *Task) IsCheckoutCleaning() bool  { return t.isCheckoutCleaning }
func (t *Task) StartedAt() *time.Time     { return t.startedAt }
func (t *Task) CompletedAt() *time.Time   { return t.completedAt }
func (t *Task) VerifiedAt() *time.Time    { return t.verifiedAt }
func (t *Task) CreatedAt() time.Time      { return t.createdAt }
func (t *Task) UpdatedAt() time.Time      { return t.updatedAt }
