package response

import (
	"time"

	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type PolicyResponse struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Description             string    `json:"description"`
	FullRefundDays          int32     `json:"full_refund_days"`
	PartialRefundDays       int32     `json:"partial_refund_days"`
	PartialRefundPercentage string    `json:"partial_refund_percentage"`
	IsActive                bool      `json:"is_active"`
	CreatedAt               time.Time `json:"created_at"`
}

func FromPolicyList(items []*queries.PolicyView) []PolicyResponse {
	res := make([]PolicyResponse, len(items))
	for i, it := range items {
		mustCopy(&res[i], it)
	}
	return res
}

type TaskResponse struct {
	ID                 uuid.UUID  `json:"id"`
	RoomID             uuid.UUID  `json:"room_id"`
	RoomNumber         string     `json:"room_number"`
	BookingID          *uuid.UUID `json:"booking_id,omitempty"`
	TaskType           string     `json:"task_type"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	ScheduledDate      string     `json:"scheduled_date"`
	AssignedTo         *uuid.UUID `json:"assigned_to,omitempty"`
	EstimatedMinutes   int32      `json:"estimated_minutes"`
	IsCheckoutCleaning bool       `json:"is_checkout_cleaning"`
	Notes              string     `json:"notes"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromTaskList(items []*queries.TaskView) []TaskResponse {
	res := make([]TaskResponse, len(items))
	for i, it := range items {
		mustCopy(&res[i], it)
	}
	return res
}

type RoomResponse struct {
	ID                uuid.UUID `json:"id"`
	Number            string    `json:"number"`
	Floor             int32     `json:"floor"`
	RoomTypeID        uuid.UUID `json:"room_type_id"`
	RoomTypeName      string    `json:"room_type_name"`
	Capacity          int32     `json:"capacity"`
	PricePerNight     string    `json:"price_per_night"`
	MaintenanceStatus string    `json:"maintenance_status"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var res RoomResponse
	mustCopy(&res, v)
	return &res
}
