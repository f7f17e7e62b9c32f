package converter

import (
	"hotel-core/internal/domain/housekeeping"
	sqlc "hotel-core/internal/infra/sqlc/generated"
	"hotel-core/internal/pkg/pgconv"
)

func TaskToCreateParams(t *housekeeping.Task) sqlc.CreateHousekeepingTaskParams {
	return sqlc.CreateHousekeepingTaskParams{
		ID:                 t.ID(),
		RoomID:             t.RoomID(),
		BookingID:          pgconv.UUIDPtrToPgtype(t.BookingID()),
		TaskType:           t.TaskType().String(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		ScheduledDate:      pgconv.DateToPgtype(t.ScheduledDate()),
		AssignedTo:         pgconv.UUIDPtrToPgtype(t.AssignedTo()),
		CreatedBy:          pgconv.UUIDPtrToPgtype(t.CreatedBy()),
		Notes:              t.Notes(),
		EstimatedMinutes:   int32(t.EstimatedMinutes()),
		IsCheckoutCleaning: t.IsCheckoutCleaning(),
	}
}

func TaskToUpdateParams(t *housekeeping.Task) sqlc.UpdateHousekeepingTaskParams {
	return sqlc.UpdateHousekeepingTaskParams{
		ID:                t.ID(),
		Status:            t.Status().String(),
		AssignedTo:        pgconv.UUIDPtrToPgtype(t.AssignedTo()),
		VerifiedBy:        pgconv.UUIDPtrToPgtype(t.VerifiedBy()),
		CompletionNotes:   t.CompletionNotes(),
		VerificationNotes: t.VerificationNotes(),
		Notes:             t.Notes(),
		StartedAt:         pgconv.TimePtrToPgtype(t.StartedAt()),
		CompletedAt:       pgconv.TimePtrToPgtype(t.CompletedAt()),
		VerifiedAt:        pgconv.TimePtrToPgtype(t.VerifiedAt()),
	}
}

func TaskToDomain(row sqlc.HousekeepingTasks) (*housekeeping.Task, error) {
	taskType, err := housekeeping.ParseTaskType(row.TaskType)
	if err != nil {
		return nil, err
	}
	priority, err := housekeeping.ParsePriority(row.Priority)
	if err != nil {
		return nil, err
	}
	status, err := housekeeping.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return housekeeping.ReconstructTask(
		row.ID, row.RoomID,
		pgconv.UUIDPtrFromPgtype(row.BookingID),
		taskType, priority, status,
		pgconv.DateFromPgtype(row.ScheduledDate),
		pgconv.UUIDPtrFromPgtype(row.AssignedTo),
		pgconv.UUIDPtrFromPgtype(row.CreatedBy),
		pgconv.UUIDPtrFromPgtype(row.VerifiedBy),
		row.Notes, row.CompletionNotes, row.VerificationNotes,
		int(row.EstimatedMinutes),
		row.IsCheckoutCleaning,
		pgconv.TimePtrFromPgtype(row.StartedAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
		pgconv.TimePtrFromPgtype(row.VerifiedAt),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
