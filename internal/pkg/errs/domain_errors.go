package errs

// Sentinels shared across usecase layers. Behavioral errors live in their domain packages.
var (
	// Not found
	ErrRoomNotFound     = New("room not found")
	ErrRoomTypeNotFound = New("room type not found")
	ErrBookingNotFound  = New("booking not found")
	ErrPaymentNotFound  = New("payment not found")
	ErrInvoiceNotFound  = New("invoice not found")
	ErrRuleNotFound     = New("pricing rule not found")
	ErrPolicyNotFound   = New("cancellation policy not found")
	ErrTaskNotFound     = New("housekeeping task not found")
	ErrUserNotFound     = New("user not found")
	ErrGuestNotFound    = New("guest not found")

	// Validation
	ErrInvalidDateRange       = New("check-out must be after check-in")
	ErrDomainValidationFailed = New("domain validation failed")

	// Access
	ErrForbidden = New("operation not permitted for this user")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrConflict                = New("resource already exists")
)
