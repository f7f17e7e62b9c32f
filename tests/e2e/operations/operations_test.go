//go:build e2e

package operations_test

import (
	"fmt"
	"net/http"
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

type operationsSuite struct {
	e2e.SharedSuite
	managerToken string
	clerkToken   string
	clerkID      uuid.UUID
}

func TestOperationsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(operationsSuite))
}

func (s *operationsSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.managerToken = authtest.StaffToken(t, s.DB, s.Router, "manager@example.com", user.RoleManager)
	s.clerkID = dbtest.CreateTestUser(t, s.DB, "clerk@example.com", string(user.RoleRegular))
	s.clerkToken = authtest.AccessToken(t, s.Router, "clerk@example.com")
}

func (s *operationsSuite) quote(basePrice string, nights int) resdto.QuoteResponse {
	t := s.T()
	t.Helper()

	checkIn := dateutil.AddDays(dateutil.DateOf(time.Now().UTC()), 3)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/pricing/quote", map[string]any{
		"base_price":     basePrice,
		"check_in_date":  dateutil.Format(checkIn),
		"check_out_date": dateutil.Format(dateutil.AddDays(checkIn, nights)),
	}, s.clerkToken)

	var res resdto.QuoteResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func (s *operationsSuite) TestPricingRules() {
	s.Run("ルールの作成と削除が見積もりに即時反映される", func() {
		t := s.T()

		before := s.quote("100.00", 2)
		require.Empty(t, before.AppliedRules)
		require.Equal(t, "200.00", before.TotalPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/pricing-rules", map[string]any{
			"name":             "Midweek promo",
			"rule_type":        "custom",
			"priority":         5,
			"adjustment_type":  "percentage",
			"adjustment_value": "-10",
		}, s.managerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created resdto.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		discounted := s.quote("100.00", 2)
		require.Len(t, discounted.AppliedRules, 1)
		require.Equal(t, "Midweek promo", discounted.AppliedRules[0].RuleName)
		require.Equal(t, "90.00", discounted.AdjustedPricePerNight)
		require.Equal(t, "180.00", discounted.TotalPrice)
		require.Equal(t, "20.00", discounted.Savings)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/pricing-rules/"+created.ID, nil, s.managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		after := s.quote("100.00", 2)
		require.Empty(t, after.AppliedRules)
		require.Equal(t, "200.00", after.TotalPrice)
	})
}

func (s *operationsSuite) checkedOutRoom(number string) (uuid.UUID, resdto.CheckOutResponse) {
	t := s.T()
	t.Helper()

	roomID := dbtest.RoomIDByNumber(t, s.DB, number)
	guestID := dbtest.CreateTestGuest(t, s.DB, "Mary", "Jackson", 1)
	today := dateutil.DateOf(time.Now().UTC())

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", map[string]any{
		"guest_id":         guestID,
		"room_id":          roomID,
		"check_in_date":    dateutil.Format(today),
		"check_out_date":   dateutil.Format(dateutil.AddDays(today, 1)),
		"number_of_guests": 1,
	}, s.managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var bk resdto.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &bk))

	base := fmt.Sprintf("/api/bookings/%s", bk.ID)
	for _, action := range []string{"confirm", "check-in"} {
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/"+action, nil, s.managerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/check-out", nil, s.managerToken)
	var out resdto.CheckOutResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)
	return roomID, out
}

func (s *operationsSuite) TestHousekeeping() {
	s.Run("清掃タスクの検証で部屋が利用可能に戻る", func() {
		t := s.T()

		roomID, out := s.checkedOutRoom("201")
		taskURL := "/api/housekeeping/tasks/" + out.TaskID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/housekeeping/tasks?room_id="+roomID.String(), nil, s.clerkToken)
		var tasks []resdto.TaskResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tasks)
		require.Len(t, tasks, 1)
		require.True(t, tasks[0].IsCheckoutCleaning)
		require.Equal(t, "pending", tasks[0].Status)

		// 一般ユーザーは割り当てできない
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, taskURL+"/assign",
			map[string]any{"assignee_id": s.clerkID}, s.clerkToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, taskURL+"/assign",
			map[string]any{"assignee_id": s.clerkID}, s.managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// 担当者以外は開始できない
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, taskURL+"/start", nil, s.managerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, taskURL+"/start", nil, s.clerkToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, taskURL+"/complete",
			map[string]any{"notes": "linen replaced"}, s.clerkToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, taskURL+"/verify", nil, s.clerkToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, taskURL+"/verify",
			map[string]any{"notes": "ok"}, s.managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rooms/"+roomID.String(), nil, s.clerkToken)
		var rm resdto.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rm)
		require.Equal(t, "available", rm.MaintenanceStatus)

		// 検証済みタスクは失敗にできない
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, taskURL+"/fail", nil, s.managerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("部屋のメンテナンス状態はスタッフのみ変更可能", func() {
		t := s.T()
		roomID := dbtest.RoomIDByNumber(t, s.DB, "301")
		url := "/api/rooms/" + roomID.String() + "/maintenance-status"

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"status": "out_of_service"}, s.clerkToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"status": "broken"}, s.managerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *operationsSuite) TestNoShow() {
	s.Run("ノーショーは宿泊料金を請求する", func() {
		t := s.T()

		guestID := dbtest.CreateTestGuest(t, s.DB, "Dorothy", "Vaughan", 0)
		today := dateutil.DateOf(time.Now().UTC())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", map[string]any{
			"guest_id":         guestID,
			"room_id":          dbtest.RoomIDByNumber(t, s.DB, "102"),
			"check_in_date":    dateutil.Format(today),
			"check_out_date":   dateutil.Format(dateutil.AddDays(today, 2)),
			"number_of_guests": 1,
		}, s.clerkToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var bk resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &bk))
		base := "/api/bookings/" + bk.ID.String()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/confirm", nil, s.clerkToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/no-show", nil, s.clerkToken)
		var res resdto.NoShowResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "240.00", res.Amount)
		require.NotNil(t, res.ChargeID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, base+"/payments", nil, s.clerkToken)
		var payments []resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &payments)
		require.Len(t, payments, 1)
		require.Equal(t, *res.ChargeID, payments[0].ID)
		require.Equal(t, "240.00", payments[0].Amount)

		// ノーショー後は部屋を再予約できる
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", map[string]any{
			"guest_id":         guestID,
			"room_id":          dbtest.RoomIDByNumber(t, s.DB, "102"),
			"check_in_date":    dateutil.Format(today),
			"check_out_date":   dateutil.Format(dateutil.AddDays(today, 1)),
			"number_of_guests": 1,
		}, s.clerkToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func (s *operationsSuite) TestCancellationPolicies() {
	flexible := map[string]any{
		"name":                      "Flexible",
		"description":               "3 days full, 1 day quarter",
		"full_refund_days":          3,
		"partial_refund_days":       1,
		"partial_refund_percentage": "25",
	}

	s.Run("作成と一覧", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/cancellation-policies", flexible, s.managerToken)
		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/cancellation-policies?active_only=true", nil, s.clerkToken)
		var list []resdto.PolicyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)

		var found *resdto.PolicyResponse
		for i := range list {
			if list[i].ID.String() == created.ID {
				found = &list[i]
			}
		}
		require.NotNil(t, found, "created policy missing from list")
		require.Equal(t, "Flexible", found.Name)
		require.Equal(t, int32(3), found.FullRefundDays)
		require.Equal(t, int32(1), found.PartialRefundDays)
		require.Equal(t, "25.00", found.PartialRefundPercentage)
		require.True(t, found.IsActive)
	})

	s.Run("同名は409", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/cancellation-policies", flexible, s.managerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/cancellation-policies", flexible, s.managerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("ウィンドウ逆転は400", func() {
		bad := map[string]any{
			"name":                      "Backwards",
			"full_refund_days":          1,
			"partial_refund_days":       5,
			"partial_refund_percentage": "50",
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cancellation-policies", bad, s.managerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("フロント係は作成できない", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cancellation-policies", flexible, s.clerkToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}
