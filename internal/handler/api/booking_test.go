//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-core/internal/domain/booking"
	"hotel-core/internal/domain/housekeeping"
	"hotel-core/internal/domain/user"
	"hotel-core/internal/handler/api"
	"hotel-core/internal/handler/middleware"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/pkg/dateutil"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"
	"hotel-core/internal/usecase/shared"
	"hotel-core/tests/common/builder"
	"hotel-core/tests/common/httptest"
	"hotel-core/tests/common/testutil"
	commandsmock "hotel-core/tests/mock/commands"
	queriesmock "hotel-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	actor        shared.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actor = shared.Actor{UserID: uuid.New(), Role: user.RoleRegular}

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, s.actor)
		c.Next()
	}

	g := s.router.Group("/bookings", authMiddleware)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.POST("/:id/confirm", h.Confirm)
	g.POST("/:id/check-out", h.CheckOut)
	g.POST("/:id/cancel", h.Cancel)
	g.POST("/:id/no-show", h.MarkNoShow)
	g.GET("/:id/invoice", h.Invoice)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateDTO()
	id := uuid.New()

	s.Run("成功: 201と予約詳細", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateBookingInput{
			GuestID:        b.GuestID,
			RoomID:         b.RoomID,
			CheckIn:        b.CheckIn,
			CheckOut:       b.CheckOut,
			NumberOfGuests: b.NumberOfGuests,
		}, s.actor).Return(id, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actor).Return(b.BuildView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
		s.Equal("2025-06-10", response.CheckInDate)
		s.Equal("2025-06-13", response.CheckOutDate)
		s.Equal("100.00", response.PricePerNight)
		s.Equal("300.00", response.TotalPrice)
		s.Equal("pending", response.Status)
	})

	s.Run("異常系: 入力検証で400", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "guest_id欠落", mutate: testutil.Field("guest_id", nil)},
			{name: "人数0", mutate: testutil.Field("number_of_guests", 0)},
			{name: "日付形式NG", mutate: testutil.Field("check_in_date", "10/06/2025")},
			{name: "check_out欠落", mutate: testutil.Field("check_out_date", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("異常系: ドメインエラーをステータスに変換", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "空室なし", err: booking.ErrRoomUnavailable, status: http.StatusBadRequest, msg: "room is not available"},
			{name: "日付範囲不正", err: errs.ErrInvalidDateRange, status: http.StatusBadRequest, msg: "check-out must be after check-in"},
			{name: "部屋不在", err: errs.ErrRoomNotFound, status: http.StatusNotFound, msg: "room not found"},
			{name: "宿泊者不在", err: errs.ErrGuestNotFound, status: http.StatusNotFound, msg: "guest not found"},
			{name: "DB障害", err: errs.Wrap(errs.ErrDatabaseOperationFailed, "insert booking"), status: http.StatusInternalServerError, msg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actor).Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("異常系: 認証なしで401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("成功: フィルタとカーソルを渡し次ページカーソルを返す", func() {
		roomID := uuid.New()
		status := booking.StatusConfirmed
		from := dateutil.Date(2025, 6, 1)
		next := &queries.Cursor{After: queries.EncodeAfterCursor(time.Now(), uuid.New())}
		item := &queries.BookingListItem{
			ID:           uuid.New(),
			CheckInDate:  from,
			CheckOutDate: dateutil.Date(2025, 6, 3),
			Status:       "confirmed",
			TotalPrice:   decimal.RequireFromString("240"),
		}

		s.mockQueries.EXPECT().List(gomock.Any(),
			queries.BookingFilter{Status: &status, RoomID: &roomID, CheckInFrom: &from},
			&queries.Cursor{After: "abc"}, 5, s.actor,
		).Return([]*queries.BookingListItem{item}, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?status=confirmed&room_id="+roomID.String()+"&check_in_from=2025-06-01&cursor=abc&limit=5", nil, "token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal("240.00", response.Items[0].TotalPrice)
		s.Equal("2025-06-01", response.Items[0].CheckInDate)
		s.Equal(next.After, response.NextCursor)
	})

	s.Run("異常系: 不正なステータスで400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=archived", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking status")
	})

	s.Run("異常系: 不正なカーソルで400", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), s.actor).
			Return(nil, nil, errs.Wrap(queries.ErrInvalidCursor, "unknown cursor version"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=bogus", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})

	s.Run("異常系: limit上限超過で400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=500", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("一般ユーザーには内部メモを返さない", func() {
		id := uuid.New()
		view := builder.NewBookingBuilder().BuildView(id)
		view.InternalNotes = "VIP, comp upgrade"
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actor).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.InternalNotes)
	})

	s.Run("異常系: 不正なIDで400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("異常系: 存在しない予約で404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actor).Return(nil, errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	view := builder.NewBookingBuilder().BuildView(id)

	s.Run("成功: 変更内容とアクターをコマンドへ渡す", func() {
		guests := 3
		notes := "late arrival"
		s.mockCommands.EXPECT().Update(gomock.Any(), id, booking.Update{NumberOfGuests: &guests, InternalNotes: &notes}, s.actor).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actor).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+id.String(),
			map[string]any{"number_of_guests": 3, "internal_notes": "late arrival"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("異常系: チェックイン後の日付変更で400", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any(), s.actor).Return(booking.ErrBookingNotEditable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+id.String(),
			map[string]any{"check_out_date": "2025-06-20"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "booking can no longer be modified")
	})

	s.Run("異常系: 他人の予約は404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any(), s.actor).Return(errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+id.String(),
			map[string]any{"number_of_guests": 2}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("確定: 不正な遷移で400", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), id, s.actor).
			Return(&booking.TransitionError{From: booking.StatusCancelled, To: booking.StatusConfirmed})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/confirm", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking status transition")
	})

	s.Run("確定: 他人の予約は403で予約を引き直さない", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), id, s.actor).Return(errs.ErrForbidden)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/confirm", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "operation not permitted")
	})

	s.Run("ノーショー: 他人の予約は403", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), id, s.actor).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/no-show", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "operation not permitted")
	})

	s.Run("チェックアウト: 最終請求額と清掃タスク", func() {
		taskID := uuid.New()
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id, s.actor).Return(&commands.CheckOutResult{
			FinalBill:    decimal.RequireFromString("360"),
			TaskID:       taskID,
			TaskPriority: housekeeping.PriorityHigh,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/check-out", nil, "token")

		var response resdto.CheckOutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("360.00", response.FinalBill)
		s.Equal(taskID, response.TaskID)
		s.Equal(string(housekeeping.PriorityHigh), response.TaskPriority)
	})

	s.Run("キャンセル: ボディ無しでも受け付ける", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, (*uuid.UUID)(nil), s.actor).Return(&commands.CancelResult{
			PolicyName:       "Standard",
			RefundPercentage: decimal.NewFromInt(50),
			RefundCount:      1,
			RefundTotal:      decimal.RequireFromString("150"),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "token")

		var response resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Standard", response.PolicyName)
		s.Equal("50.00", response.RefundPercentage)
		s.Equal(1, response.RefundCount)
		s.Equal("150.00", response.RefundTotal)
	})

	s.Run("キャンセル: ポリシー指定を渡す", func() {
		policyID := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, &policyID, s.actor).Return(&commands.CancelResult{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel",
			map[string]any{"policy_id": policyID.String()}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("キャンセル: 他人の予約は403", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, gomock.Any(), s.actor).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "operation not permitted")
	})

	s.Run("ノーショー: 請求なし", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), id, s.actor).Return(&commands.NoShowResult{Amount: decimal.Zero}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/no-show", nil, "token")

		var response resdto.NoShowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.ChargeID)
		s.Equal("0.00", response.Amount)
	})
}

func (s *BookingHandlerTestSuite) TestInvoice() {
	id := uuid.New()

	s.Run("成功: 請求書", func() {
		s.mockQueries.EXPECT().Invoice(gomock.Any(), id, s.actor).Return(&queries.InvoiceView{
			ID:            uuid.New(),
			BookingID:     id,
			InvoiceNumber: "INV-20250613-ABC123",
			Subtotal:      decimal.RequireFromString("300"),
			TaxAmount:     decimal.RequireFromString("30"),
			TotalAmount:   decimal.RequireFromString("330"),
			Currency:      "USD",
			IssuedAt:      time.Now(),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String()+"/invoice", nil, "token")

		var response resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("INV-20250613-ABC123", response.InvoiceNumber)
		s.Equal("330.00", response.TotalAmount)
	})

	s.Run("未発行なら404", func() {
		s.mockQueries.EXPECT().Invoice(gomock.Any(), id, s.actor).Return(nil, errs.ErrInvoiceNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String()+"/invoice", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "invoice not found")
	})
}
