package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/backend"
	"storefront/dto"
	"storefront/middleware"
	"storefront/models"
	"storefront/response"
	"storefront/services"
	"storefront/validator"
)

// PaymentController dẫn khách qua bước gửi đặt phòng và theo dõi
// phiên thanh toán cho tới trạng thái cuối.
type PaymentController struct {
	drafts       *services.DraftService
	inventory    *services.InventoryService
	pricing      *services.PricingService
	orchestrator *services.PaymentOrchestrator
	backend      *backend.Client
}

func NewPaymentController(drafts *services.DraftService, inventory *services.InventoryService, pricing *services.PricingService, orchestrator *services.PaymentOrchestrator, client *backend.Client) *PaymentController {
	return &PaymentController{
		drafts:       drafts,
		inventory:    inventory,
		pricing:      pricing,
		orchestrator: orchestrator,
		backend:      client,
	}
}

// Checkout gửi draft đi đặt phòng: kiểm tra tại chỗ trước, xác nhận lại
// phòng trống với backend, chốt giá rồi giao cho orchestrator rẽ nhánh
// theo phương thức thanh toán. Thành công thì draft bị hủy.
func (ctl *PaymentController) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	draft, err := ctl.drafts.Get(c.Request.Context(), req.DraftID)
	if err != nil {
		response.NotFound(c)
		return
	}
	if err := validator.ValidateDraftForCheckout(draft); err != nil {
		response.AppError(c, err)
		return
	}

	token := middleware.BackendToken(c)

	// Xác nhận lại phòng trống ngay trước khi đặt; backend là nguồn
	// sự thật, UI có thể đang hiển thị số cũ
	roomIDs := draft.SelectedRoomIDs()
	freeUnits, err := ctl.inventory.CheckRooms(c.Request.Context(), token, roomIDs, draft.Stay.CheckInDate, draft.Stay.CheckOutDate)
	if err != nil {
		response.AppError(c, err)
		return
	}

	rooms := make([]models.RoomAvailability, 0, len(roomIDs))
	picks := make([]models.RoomPick, 0, len(roomIDs))
	for _, roomID := range roomIDs {
		units := draft.RoomSelection[roomID]
		if freeUnits[roomID] < units {
			response.Conflict(c, "Số phòng trống không còn đủ, vui lòng giảm số phòng")
			return
		}
		detail, err := ctl.backend.GetRoomByID(c.Request.Context(), token, roomID)
		if err != nil {
			response.AppError(c, err)
			return
		}
		rooms = append(rooms, models.RoomAvailability{Room: detail.Room, FreeUnits: freeUnits[roomID]})
		picks = append(picks, models.RoomPick{Room: detail.Room, Units: units})
	}

	breakdown, quoteErr := ctl.pricing.QuoteSelection(c.Request.Context(), token, draft.HotelID,
		picks, draft.Stay.Nights(), draft.Seasonal, draft.DiscountCodes, draft.Services)

	session, booking, err := ctl.orchestrator.Submit(c.Request.Context(), token, draft, rooms, breakdown)
	if err != nil {
		response.AppError(c, err)
		return
	}

	// Đặt thành công thì draft không còn giá trị
	_ = ctl.drafts.Discard(c.Request.Context(), draft.ID)

	result := dto.CheckoutResponse{Session: session, Booking: booking, Breakdown: &breakdown}
	if quoteErr != nil {
		response.SuccessWithNotice(c, result, "Mã giảm giá không được áp dụng")
		return
	}
	response.Success(c, result)
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã booking không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

// GetSession đọc phiên thanh toán đang theo dõi
func (ctl *PaymentController) GetSession(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	session, err := ctl.orchestrator.Session(bookingID)
	if err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, session)
}

// ConfirmPayment xác nhận thanh toán thủ công (mô phỏng chuyển khoản)
func (ctl *PaymentController) ConfirmPayment(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	session, err := ctl.orchestrator.Confirm(c.Request.Context(), middleware.BackendToken(c), bookingID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, session)
}

// RecheckPayment đọc lại trạng thái thanh toán từ backend theo yêu cầu
func (ctl *PaymentController) RecheckPayment(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	session, err := ctl.orchestrator.Recheck(c.Request.Context(), middleware.BackendToken(c), bookingID)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, session)
}

// CloseSession dừng theo dõi phiên khi khách rời màn hình thanh toán
func (ctl *PaymentController) CloseSession(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	ctl.orchestrator.Unregister(bookingID)
	response.Success(c, nil)
}
