//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"hotel-core/internal/domain/user"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/pkg/dateutil"
	"hotel-core/tests/common/authtest"
	"hotel-core/tests/common/dbtest"
	"hotel-core/tests/common/httptest"
	"hotel-core/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
	managerToken string
	clerkToken   string
	guestID      uuid.UUID
	roomID       uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.managerToken = authtest.StaffToken(t, s.DB, s.Router, "manager@example.com", user.RoleManager)
	s.clerkToken = authtest.StaffToken(t, s.DB, s.Router, "clerk@example.com", user.RoleRegular)
	s.guestID = dbtest.CreateTestGuest(t, s.DB, "Katherine", "Johnson", 0)
	s.roomID = dbtest.RoomIDByNumber(t, s.DB, "101")
}

func (s *bookingSuite) createBooking(token string, checkIn time.Time, nights int) resdto.BookingResponse {
	t := s.T()
	t.Helper()

	body := map[string]any{
		"guest_id":         s.guestID,
		"room_id":          s.roomID,
		"check_in_date":    dateutil.Format(checkIn),
		"check_out_date":   dateutil.Format(dateutil.AddDays(checkIn, nights)),
		"number_of_guests": 2,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res resdto.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *bookingSuite) post(path, token string, body any) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, body, token)
}

func (s *bookingSuite) TestLifecycle() {
	s.Run("予約から請求書発行まで", func() {
		t := s.T()
		today := dateutil.DateOf(time.Now().UTC())

		bk := s.createBooking(s.clerkToken, today, 3)
		require.Equal(t, "pending", bk.Status)
		require.Equal(t, "360.00", bk.TotalPrice)
		require.NotEmpty(t, bk.BookingNumber)

		base := fmt.Sprintf("%s/%s", bookingsURL, bk.ID)

		for _, step := range []struct {
			action string
			status string
		}{
			{action: "confirm", status: "confirmed"},
			{action: "check-in", status: "checked_in"},
		} {
			w := s.post(base+"/"+step.action, s.clerkToken, nil)
			var res resdto.BookingResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.Equal(t, step.status, res.Status, step.action)
		}

		// チェックイン済みの予約は部屋を変更できない
		other := dbtest.RoomIDByNumber(t, s.DB, "102")
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, base, map[string]any{"room_id": other}, s.clerkToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		w = s.post(base+"/check-out", s.clerkToken, nil)
		var out resdto.CheckOutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)
		require.Equal(t, "360.00", out.FinalBill)
		require.NotEqual(t, uuid.Nil, out.TaskID)

		// 最終請求額を超える支払いは拒否
		w = s.post("/api/payments", s.clerkToken, map[string]any{
			"booking_id":     bk.ID,
			"amount":         "400.00",
			"payment_method": "card",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var over resdto.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &over))
		w = s.post("/api/payments/"+over.ID+"/process", s.clerkToken, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		w = s.post("/api/payments", s.clerkToken, map[string]any{
			"booking_id":     bk.ID,
			"amount":         "360.00",
			"payment_method": "card",
			"reference":      "TXN-E2E-1",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created resdto.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = s.post("/api/payments/"+created.ID+"/process", s.clerkToken, nil)
		var processed resdto.ProcessPaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &processed)
		require.False(t, processed.AlreadyPaid)
		require.True(t, processed.InvoiceCreated)
		require.NotNil(t, processed.InvoiceID)

		// 二回目の処理は冪等
		w = s.post("/api/payments/"+created.ID+"/process", s.clerkToken, nil)
		var again resdto.ProcessPaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &again)
		require.True(t, again.AlreadyPaid)
		require.False(t, again.InvoiceCreated)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, base+"/invoice", nil, s.clerkToken)
		var inv resdto.InvoiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &inv)
		require.Equal(t, *processed.InvoiceID, inv.ID)
		require.Equal(t, bk.ID, inv.BookingID)
		require.NotEmpty(t, inv.InvoiceNumber)

		// 明示的な発行は既存の請求書を返す。一般ユーザーは呼べない
		w = s.post("/api/invoices/"+bk.ID.String(), s.clerkToken, nil)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
		w = s.post("/api/invoices/"+bk.ID.String(), s.managerToken, nil)
		var explicit resdto.InvoiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &explicit)
		require.Equal(t, inv.ID, explicit.ID)

		// 清掃タスクが作成され、部屋はメンテナンス中になる
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rooms/"+s.roomID.String(), nil, s.clerkToken)
		var rm resdto.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rm)
		require.Equal(t, "maintenance", rm.MaintenanceStatus)
	})
}

func (s *bookingSuite) TestCancel() {
	s.Run("十分前のキャンセルは全額返金", func() {
		t := s.T()
		checkIn := dateutil.AddDays(dateutil.DateOf(time.Now().UTC()), 30)

		bk := s.createBooking(s.clerkToken, checkIn, 2)
		base := fmt.Sprintf("%s/%s", bookingsURL, bk.ID)

		w := s.post(base+"/confirm", s.clerkToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// チェックアウト前の支払いはAPIからは登録できない
		w = s.post("/api/payments", s.clerkToken, map[string]any{
			"booking_id":     bk.ID,
			"amount":         "100.00",
			"payment_method": "card",
		})
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		dbtest.InsertPaidPayment(t, s.DB, bk.ID, "100.00", "TXN-DEPOSIT")

		w = s.post(base+"/cancel", s.clerkToken, nil)
		var res resdto.CancelResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "Standard", res.PolicyName)
		require.Equal(t, "100.00", res.RefundPercentage)
		require.Equal(t, 1, res.RefundCount)
		require.Equal(t, "100.00", res.RefundTotal)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, base+"/payments", nil, s.clerkToken)
		var payments []resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &payments)
		require.Len(t, payments, 2)

		statuses := map[string]int{}
		for _, p := range payments {
			statuses[p.Status]++
		}
		require.Equal(t, map[string]int{"paid": 1, "refunded": 1}, statuses)

		// キャンセル済みの予約は再キャンセルできない
		w = s.post(base+"/cancel", s.clerkToken, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("他人の予約は一般ユーザーからキャンセルできない", func() {
		t := s.T()
		checkIn := dateutil.AddDays(dateutil.DateOf(time.Now().UTC()), 10)

		bk := s.createBooking(s.managerToken, checkIn, 1)
		base := fmt.Sprintf("%s/%s", bookingsURL, bk.ID)

		w := s.post(base+"/cancel", s.clerkToken, nil)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = s.post(base+"/cancel", s.managerToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("他人の予約の確定は403で状態も変わらない", func() {
		t := s.T()
		checkIn := dateutil.AddDays(dateutil.DateOf(time.Now().UTC()), 12)

		bk := s.createBooking(s.managerToken, checkIn, 1)
		base := fmt.Sprintf("%s/%s", bookingsURL, bk.ID)

		w := s.post(base+"/confirm", s.clerkToken, nil)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, base, nil, s.managerToken)
		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "pending", res.Status)
	})
}

func (s *bookingSuite) TestAvailability() {
	s.Run("重複する予約は作成できない", func() {
		t := s.T()
		checkIn := dateutil.AddDays(dateutil.DateOf(time.Now().UTC()), 5)

		first := s.createBooking(s.clerkToken, checkIn, 3)

		// 仮予約はブロックしない
		pending := s.createBooking(s.clerkToken, checkIn, 1)
		w := s.post(fmt.Sprintf("%s/%s/cancel", bookingsURL, pending.ID), s.clerkToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.post(fmt.Sprintf("%s/%s/confirm", bookingsURL, first.ID), s.clerkToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"guest_id":         s.guestID,
			"room_id":          s.roomID,
			"check_in_date":    dateutil.Format(dateutil.AddDays(checkIn, 2)),
			"check_out_date":   dateutil.Format(dateutil.AddDays(checkIn, 4)),
			"number_of_guests": 1,
		}, s.clerkToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		// チェックアウト日と同日のチェックインは可能
		s.createBooking(s.clerkToken, dateutil.AddDays(checkIn, 3), 1)
	})
}
