package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// BookingView joins the booking with its guest and room for display
type BookingView struct {
	ID              uuid.UUID        `json:"id"`
	BookingNumber   string           `json:"booking_number"`
	GuestID         uuid.UUID        `json:"guest_id"`
	GuestName       string           `json:"guest_name"`
	RoomID          uuid.UUID        `json:"room_id"`
	RoomNumber      string           `json:"room_number"`
	CreatedBy       uuid.UUID        `json:"created_by"`
	CheckInDate     time.Time        `json:"check_in_date"`
	CheckOutDate    time.Time        `json:"check_out_date"`
	NumberOfGuests  int32            `json:"number_of_guests"`
	Status          string           `json:"status"`
	PricePerNight   decimal.Decimal  `json:"price_per_night"`
	TotalPrice      decimal.Decimal  `json:"total_price"`
	FinalBill       *decimal.Decimal `json:"final_bill,omitempty"`
	ActualCheckIn   *time.Time       `json:"actual_check_in,omitempty"`
	ActualCheckOut  *time.Time       `json:"actual_check_out,omitempty"`
	CancelledAt     *time.Time       `json:"cancelled_at,omitempty"`
	SpecialRequests string           `json:"special_requests"`
	InternalNotes   string           `json:"internal_notes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID       `json:"id"`
	BookingNumber string          `json:"booking_number"`
	GuestName     string          `json:"guest_name"`
	RoomNumber    string          `json:"room_number"`
	CheckInDate   time.Time       `json:"check_in_date"`
	CheckOutDate  time.Time       `json:"check_out_date"`
	Status        string          `json:"status"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	CreatedAt     time.Time       `json:"created_at"`
}

type PaymentView struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	BookingNumber string          `json:"booking_number"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	Reference     string          `json:"reference"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	RefundedAt    *time.Time      `json:"refunded_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type InvoiceView struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
	IssuedAt      time.Time       `json:"issued_at"`
}

type PolicyView struct {
	ID                      uuid.UUID       `json:"id"`
	Name                    string          `json:"name"`
	Description             string          `json:"description"`
	FullRefundDays          int32           `json:"full_refund_days"`
	PartialRefundDays       int32           `json:"partial_refund_days"`
	PartialRefundPercentage decimal.Decimal `json:"partial_refund_percentage"`
	IsActive                bool            `json:"is_active"`
	CreatedAt               time.Time       `json:"created_at"`
}

type PricingRuleView struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	RuleType        string          `json:"rule_type"`
	Priority        int32           `json:"priority"`
	AdjustmentType  string          `json:"adjustment_type"`
	AdjustmentValue decimal.Decimal `json:"adjustment_value"`
	RoomTypeID      *uuid.UUID      `json:"room_type_id,omitempty"`
	StartDate       *time.Time      `json:"start_date,omitempty"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	ApplicableDays  []int           `json:"applicable_days"`
	MinNights       *int            `json:"min_nights,omitempty"`
	MinAdvanceDays  *int            `json:"min_advance_days,omitempty"`
	MaxAdvanceDays  *int            `json:"max_advance_days,omitempty"`
	MinLoyaltyTier  *int            `json:"min_loyalty_tier,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type TaskView struct {
	ID                 uuid.UUID  `json:"id"`
	RoomID             uuid.UUID  `json:"room_id"`
	RoomNumber         string     `json:"room_number"`
	BookingID          *uuid.UUID `json:"booking_id,omitempty"`
	TaskType           string     `json:"task_type"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	ScheduledDate      time.Time  `json:"scheduled_date"`
	AssignedTo         *uuid.UUID `json:"assigned_to,omitempty"`
	EstimatedMinutes   int32      `json:"estimated_minutes"`
	IsCheckoutCleaning bool       `json:"is_checkout_cleaning"`
	Notes              string     `json:"notes"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type RoomView struct {
	ID                uuid.UUID       `json:"id"`
	Number            string          `json:"number"`
	Floor             int32           `json:"floor"`
	RoomTypeID        uuid.UUID       `json:"room_type_id"`
	RoomTypeName      string          `json:"room_type_name"`
	Capacity          int32           `json:"capacity"`
	PricePerNight     decimal.Decimal `json:"price_per_night"`
	MaintenanceStatus string          `json:"maintenance_status"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type RoomTypeView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	Capacity  int32           `json:"capacity"`
}
