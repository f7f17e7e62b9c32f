package request

import (
	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/domain/refund"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePolicyRequest struct {
	Name                    string          `json:"name" binding:"required,max=255"`
	Description             string          `json:"description"`
	FullRefundDays          int             `json:"full_refund_days" binding:"min=0"`
	PartialRefundDays       int             `json:"partial_refund_days" binding:"min=0"`
	PartialRefundPercentage decimal.Decimal `json:"partial_refund_percentage"`
}

func (r *CreatePolicyRequest) ToParams() refund.PolicyParams {
	return refund.PolicyParams{
		Name:                    r.Name,
		Description:             r.Description,
		FullRefundDays:          r.FullRefundDays,
		PartialRefundDays:       r.PartialRefundDays,
		PartialRefundPercentage: r.PartialRefundPercentage,
	}
}

type ListPoliciesQuery struct {
	ActiveOnly bool `form:"active_only"`
}

type ListTasksQuery struct {
	Status        string `form:"status"`
	RoomID        string `form:"room_id"`
	AssignedTo    string `form:"assigned_to"`
	ScheduledDate string `form:"scheduled_date"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListTasksQuery) ToFilter() (queries.TaskFilter, error) {
	var f queries.TaskFilter
	if q.Status != "" {
		st, err := housekeeping.ParseStatus(q.Status)
		if err != nil {
			return f, err
		}
		f.Status = &st
	}
	var err error
	if f.RoomID, err = parseOptionalUUID("room_id", q.RoomID); err != nil {
		return f, err
	}
	if f.AssignedTo, err = parseOptionalUUID("assigned_to", q.AssignedTo); err != nil {
		return f, err
	}
	if f.ScheduledDate, err = parseOptionalDate("scheduled_date", &q.ScheduledDate); err != nil {
		return f, err
	}
	return f, nil
}

type AssignTaskRequest struct {
	AssigneeID uuid.UUID `json:"assignee_id" binding:"required"`
}

type TaskNotesRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

type MaintenanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *MaintenanceStatusRequest) ToDomain() (room.MaintenanceStatus, error) {
	return room.ParseMaintenanceStatus(r.Status)
}
