package response

import (
	"time"

	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	BookingNumber   string     `json:"booking_number"`
	GuestID         uuid.UUID  `json:"guest_id"`
	GuestName       string     `json:"guest_name"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      string     `json:"room_number"`
	CreatedBy       uuid.UUID  `json:"created_by"`
	CheckInDate     string     `json:"check_in_date"`
	CheckOutDate    string     `json:"check_out_date"`
	NumberOfGuests  int32      `json:"number_of_guests"`
	Status          string     `json:"status"`
	PricePerNight   string     `json:"price_per_night"`
	TotalPrice      string     `json:"total_price"`
	FinalBill       *string    `json:"final_bill,omitempty"`
	ActualCheckIn   *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut  *time.Time `json:"actual_check_out,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	SpecialRequests string     `json:"special_requests"`
	InternalNotes   string     `json:"internal_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FromBookingView hides internal notes from non-staff callers.
func FromBookingView(v *queries.BookingView, staff bool) *BookingResponse {
	var res BookingResponse
	mustCopy(&res, v)
	if !staff {
		res.InternalNotes = ""
	}
	return &res
}

type BookingListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingNumber string    `json:"booking_number"`
	GuestName     string    `json:"guest_name"`
	RoomNumber    string    `json:"room_number"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	Status        string    `json:"status"`
	TotalPrice    string    `json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: make([]BookingListItemResponse, len(items))}
	for i, it := range items {
		mustCopy(&res.Items[i], it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type CheckOutResponse struct {
	FinalBill    string    `json:"final_bill"`
	TaskID       uuid.UUID `json:"housekeeping_task_id"`
	TaskPriority string    `json:"housekeeping_priority"`
}

func FromCheckOutResult(r *commands.CheckOutResult) *CheckOutResponse {
	return &CheckOutResponse{
		FinalBill:    money(r.FinalBill),
		TaskID:       r.TaskID,
		TaskPriority: string(r.TaskPriority),
	}
}

type CancelResponse struct {
	PolicyName       string `json:"policy_name"`
	RefundPercentage string `json:"refund_percentage"`
	RefundCount      int    `json:"refund_count"`
	RefundTotal      string `json:"refund_total"`
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	var res CancelResponse
	mustCopy(&res, r)
	return &res
}

type NoShowResponse struct {
	ChargeID *uuid.UUID `json:"charge_payment_id,omitempty"`
	Amount   string     `json:"amount"`
}

func FromNoShowResult(r *commands.NoShowResult) *NoShowResponse {
	return &NoShowResponse{
		ChargeID: r.ChargeID,
		Amount:   money(r.Amount),
	}
}
