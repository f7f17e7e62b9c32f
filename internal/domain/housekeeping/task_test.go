//go:build unit

package housekeeping_test

import (
	"testing"
	"time"

	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask() *housekeeping.Task {
	return housekeeping.NewCheckoutCleaningTask(housekeeping.CheckoutCleaning{
		RoomID:           uuid.New(),
		BookingID:        uuid.New(),
		BookingNumber:    "BK-TEST",
		Priority:         housekeeping.PriorityNormal,
		ScheduledDate:    dateutil.Date(2025, 5, 1),
		EstimatedMinutes: 30,
	})
}

func TestCheckoutCleaningTask(t *testing.T) {
	task := newTask()

	assert.Equal(t, housekeeping.StatusPending, task.Status())
	assert.Equal(t, housekeeping.TaskTypeCleaning, task.TaskType())
	assert.True(t, task.IsCheckoutCleaning())
	assert.Contains(t, task.Notes(), "BK-TEST")
	assert.Equal(t, 30, task.EstimatedMinutes())
}

func TestTaskLifecycle(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	worker := uuid.New()
	supervisor := uuid.New()

	t.Run("pending to verified", func(t *testing.T) {
		task := newTask()
		require.NoError(t, task.Start(worker, now))
		assert.Equal(t, worker, *task.AssignedTo())
		require.NoError(t, task.Complete(worker, "done", now.Add(time.Hour)))
		require.NoError(t, task.Verify(supervisor, "ok", now.Add(2*time.Hour)))

		assert.Equal(t, housekeeping.StatusVerified, task.Status())
		assert.Equal(t, supervisor, *task.VerifiedBy())
		assert.Equal(t, "done", task.CompletionNotes())
	})

	t.Run("verify requires completed", func(t *testing.T) {
		task := newTask()
		err := task.Verify(supervisor, "", now)
		assert.ErrorIs(t, err, housekeeping.ErrInvalidTaskTransition)
		assert.Equal(t, housekeeping.StatusPending, task.Status())
	})

	t.Run("only the assignee can work the task", func(t *testing.T) {
		task := newTask()
		require.NoError(t, task.Assign(worker))
		assert.ErrorIs(t, task.Start(uuid.New(), now), housekeeping.ErrNotAssignee)
		assert.ErrorIs(t, task.Complete(uuid.New(), "", now), housekeeping.ErrNotAssignee)
	})

	t.Run("terminal tasks cannot fail again", func(t *testing.T) {
		task := newTask()
		require.NoError(t, task.Fail("broken pipe"))
		assert.ErrorIs(t, task.Fail(""), housekeeping.ErrInvalidTaskTransition)
		assert.ErrorIs(t, task.Assign(worker), housekeeping.ErrInvalidTaskTransition)
	})
}

func TestCleaningPriority(t *testing.T) {
	today := dateutil.Date(2025, 5, 1)
	at := func(days int) *time.Time {
		d := today.AddDate(0, 0, days)
		return &d
	}

	assert.Equal(t, housekeeping.PriorityNormal, housekeeping.CleaningPriority(today, nil))
	assert.Equal(t, housekeeping.PriorityUrgent, housekeeping.CleaningPriority(today, at(0)))
	assert.Equal(t, housekeeping.PriorityHigh, housekeeping.CleaningPriority(today, at(1)))
	assert.Equal(t, housekeeping.PriorityNormal, housekeeping.CleaningPriority(today, at(2)))
}
