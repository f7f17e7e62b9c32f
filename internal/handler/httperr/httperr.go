package httperr

import (
	"net/http"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/domain/payment"
	"hotel-core/internal/domain/pricing"
	"hotel-core/internal/domain/refund"
	"hotel-core/internal/domain/room"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var (
	ErrInvalidRequest = errs.New("invalid request")
	ErrUnauthorized   = errs.New("unauthorized")
)

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// BadRequest reports a malformed body, query or path parameter.
func BadRequest(c *gin.Context, err error, msg string) {
	if err == nil {
		err = ErrInvalidRequest
	}
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

type mapping struct {
	target error
	status int
}

// Order matters: the first matching sentinel wins.
var statusMappings = []mapping{
	{errs.ErrBookingNotFound, http.StatusNotFound},
	{errs.ErrRoomNotFound, http.StatusNotFound},
	{errs.ErrRoomTypeNotFound, http.StatusNotFound},
	{errs.ErrPaymentNotFound, http.StatusNotFound},
	{errs.ErrInvoiceNotFound, http.StatusNotFound},
	{errs.ErrRuleNotFound, http.StatusNotFound},
	{errs.ErrPolicyNotFound, http.StatusNotFound},
	{errs.ErrTaskNotFound, http.StatusNotFound},
	{errs.ErrUserNotFound, http.StatusNotFound},
	{errs.ErrGuestNotFound, http.StatusNotFound},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized},
	{commands.ErrTokenValidation, http.StatusUnauthorized},
	{ErrUnauthorized, http.StatusUnauthorized},

	{errs.ErrForbidden, http.StatusForbidden},
	{housekeeping.ErrNotAssignee, http.StatusForbidden},
	{commands.ErrUserInactive, http.StatusForbidden},
	{queries.ErrUserInactive, http.StatusForbidden},

	{errs.ErrConflict, http.StatusConflict},
	{commands.ErrPolicyNameTaken, http.StatusConflict},

	{errs.ErrInvalidDateRange, http.StatusBadRequest},
	{errs.ErrDomainValidationFailed, http.StatusBadRequest},
	{ErrInvalidRequest, http.StatusBadRequest},
	{queries.ErrInvalidCursor, http.StatusBadRequest},
	{queries.ErrQuoteBaseRequired, http.StatusBadRequest},
	{booking.ErrInvalidTransition, http.StatusBadRequest},
	{booking.ErrRoomUnavailable, http.StatusBadRequest},
	{booking.ErrInvalidGuestCount, http.StatusBadRequest},
	{booking.ErrBookingNotEditable, http.StatusBadRequest},
	{booking.ErrInvalidStatus, http.StatusBadRequest},
	{payment.ErrInvalidAmount, http.StatusBadRequest},
	{payment.ErrInvalidCurrency, http.StatusBadRequest},
	{payment.ErrInvalidStatus, http.StatusBadRequest},
	{payment.ErrInvalidPaymentTransition, http.StatusBadRequest},
	{payment.ErrInvalidRefundState, http.StatusBadRequest},
	{payment.ErrOverpaymentRejected, http.StatusBadRequest},
	{payment.ErrFinalBillNotSet, http.StatusBadRequest},
	{payment.ErrPaymentNotAllowed, http.StatusBadRequest},
	{refund.ErrInvalidPolicyName, http.StatusBadRequest},
	{refund.ErrInvalidTiers, http.StatusBadRequest},
	{refund.ErrInvalidPercentage, http.StatusBadRequest},
	{pricing.ErrInvalidRuleType, http.StatusBadRequest},
	{pricing.ErrInvalidAdjustmentType, http.StatusBadRequest},
	{pricing.ErrPercentageOutOfRange, http.StatusBadRequest},
	{pricing.ErrInvalidRuleName, http.StatusBadRequest},
	{pricing.ErrInvalidApplicableDay, http.StatusBadRequest},
	{pricing.ErrInvalidRuleDateRange, http.StatusBadRequest},
	{pricing.ErrInvalidAdvanceWindow, http.StatusBadRequest},
	{pricing.ErrNegativeRuleConstraint, http.StatusBadRequest},
	{pricing.ErrInvalidBasePrice, http.StatusBadRequest},
	{housekeeping.ErrInvalidTaskTransition, http.StatusBadRequest},
	{housekeeping.ErrInvalidStatus, http.StatusBadRequest},
	{room.ErrInvalidMaintenanceStatus, http.StatusBadRequest},
}

// StatusOf maps a usecase error onto an HTTP status; unknown errors are 500.
func StatusOf(err error) int {
	for _, m := range statusMappings {
		if errs.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// Abort answers with the mapped status. Server errors hide their message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := "Internal server error"
	if status < http.StatusInternalServerError {
		msg = publicMessage(err)
	}
	AbortWithError(c, status, err, msg, nil)
}

// publicMessage returns the message of the matched sentinel rather than the
// full wrap chain, which may carry internal context.
func publicMessage(err error) string {
	for _, m := range statusMappings {
		if errs.Is(err, m.target) {
			return m.target.Error()
		}
	}
	return err.Error()
}
