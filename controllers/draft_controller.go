package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/backend"
	"storefront/dto"
	"storefront/errors"
	"storefront/middleware"
	"storefront/models"
	"storefront/response"
	"storefront/services"
	"storefront/validator"
)

// DraftController phục vụ màn hình đặt phòng: mỗi lần draft đổi
// (ngày ở, số khách, phòng, mã giảm) thì xếp phòng và báo giá được
// tính lại và trả về cùng draft.
type DraftController struct {
	drafts    *services.DraftService
	inventory *services.InventoryService
	pricing   *services.PricingService
	backend   *backend.Client
}

func NewDraftController(drafts *services.DraftService, inventory *services.InventoryService, pricing *services.PricingService, client *backend.Client) *DraftController {
	return &DraftController{
		drafts:    drafts,
		inventory: inventory,
		pricing:   pricing,
		backend:   client,
	}
}

// buildQuote tính lại xếp phòng và báo giá cho draft hiện tại.
// Draft chưa đủ dữ liệu (ngày sai, chưa chọn phòng) thì trả về draft
// trần thay vì lỗi: màn hình vẫn hiển thị được.
func (ctl *DraftController) buildQuote(c *gin.Context, draft *models.BookingDraft) dto.DraftQuoteResponse {
	result := dto.DraftQuoteResponse{Draft: draft}

	if err := validator.ValidateStay(&draft.Stay); err != nil {
		return result
	}

	token := middleware.BackendToken(c)
	rooms, err := ctl.backend.GetRooms(c.Request.Context(), token, draft.HotelID)
	if err != nil {
		result.Notice = "Không tải được danh sách phòng"
		return result
	}

	roomIDs := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		if room.IsAvailable() {
			roomIDs = append(roomIDs, room.RoomId)
		}
	}
	freeUnits, err := ctl.inventory.CheckRooms(c.Request.Context(), token, roomIDs, draft.Stay.CheckInDate, draft.Stay.CheckOutDate)
	if err != nil {
		result.Notice = "Không kiểm tra được phòng trống"
		return result
	}

	candidates := make([]models.RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		candidates = append(candidates, models.RoomAvailability{Room: room, FreeUnits: freeUnits[room.RoomId]})
	}

	var picks []models.RoomPick
	if len(draft.RoomSelection) > 0 {
		roomByID := make(map[uint]models.Room, len(rooms))
		for _, room := range rooms {
			roomByID[room.RoomId] = room
		}
		for roomID, units := range draft.RoomSelection {
			if room, ok := roomByID[roomID]; ok {
				picks = append(picks, models.RoomPick{Room: room, Units: units})
			}
		}
		alloc := models.AllocationResult{Picks: picks, Shortfall: 0}
		alloc.Success = alloc.TotalCapacity() >= draft.Stay.TotalGuests()
		if !alloc.Success {
			alloc.Shortfall = draft.Stay.TotalGuests() - alloc.TotalCapacity()
		}
		result.Allocation = &alloc
	} else {
		alloc := services.AutoAllocateByGuests(candidates, draft.Stay.TotalGuests())
		result.Allocation = &alloc
		picks = alloc.Picks
	}

	if len(picks) > 0 {
		breakdown, err := ctl.pricing.QuoteSelection(c.Request.Context(), token, draft.HotelID,
			picks, draft.Stay.Nights(), draft.Seasonal, draft.DiscountCodes, draft.Services)
		result.Breakdown = &breakdown
		if err != nil {
			if appErr := errors.GetAppError(err); appErr != nil {
				result.Notice = appErr.Message
			}
		}
	}

	return result
}

// CreateDraft khởi tạo draft khi màn hình đặt phòng mở
func (ctl *DraftController) CreateDraft(c *gin.Context) {
	var req dto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	draft, err := ctl.drafts.Create(c.Request.Context(), req.HotelID, req.Stay)
	if err != nil {
		response.ServerError(c)
		return
	}
	if req.GuestName != "" || req.GuestEmail != "" || req.GuestPhone != "" {
		draft, err = ctl.drafts.UpdateGuest(c.Request.Context(), draft.ID, req.GuestName, req.GuestEmail, req.GuestPhone)
		if err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, ctl.buildQuote(c, draft))
}

// GetDraft đọc draft kèm xếp phòng và báo giá mới nhất
func (ctl *DraftController) GetDraft(c *gin.Context) {
	draft, err := ctl.drafts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, ctl.buildQuote(c, draft))
}

// UpdateStay cập nhật ngày ở và số khách của draft
func (ctl *DraftController) UpdateStay(c *gin.Context) {
	var req dto.UpdateStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStay(&req.Stay); err != nil {
		response.AppError(c, err)
		return
	}

	draft, err := ctl.drafts.UpdateStay(c.Request.Context(), c.Param("id"), req.Stay)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, ctl.buildQuote(c, draft))
}

// SelectRooms cập nhật số phòng đã chọn theo loại
func (ctl *DraftController) SelectRooms(c *gin.Context) {
	var req dto.SelectRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	draft, err := ctl.drafts.SelectRooms(c.Request.Context(), c.Param("id"), req.RoomSelection)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, ctl.buildQuote(c, draft))
}

// UpdateGuest cập nhật thông tin liên hệ của khách
func (ctl *DraftController) UpdateGuest(c *gin.Context) {
	var req dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	draft, err := ctl.drafts.UpdateGuest(c.Request.Context(), c.Param("id"), req.GuestName, req.GuestEmail, req.GuestPhone)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.DraftQuoteResponse{Draft: draft})
}

// UpdatePayment cập nhật phương thức thanh toán của draft
func (ctl *DraftController) UpdatePayment(c *gin.Context) {
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	draft, err := ctl.drafts.SetPaymentMethod(c.Request.Context(), c.Param("id"), req.PaymentMethod)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.DraftQuoteResponse{Draft: draft})
}

// UpdateDiscount thay danh sách mã giảm giá và báo giá lại
func (ctl *DraftController) UpdateDiscount(c *gin.Context) {
	var req dto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	draft, err := ctl.drafts.SetDiscountCodes(c.Request.Context(), c.Param("id"), req.DiscountCodes)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, ctl.buildQuote(c, draft))
}

// UpdateServices thay danh sách dịch vụ cộng thêm và báo giá lại
func (ctl *DraftController) UpdateServices(c *gin.Context) {
	var req dto.UpdateServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	draft, err := ctl.drafts.SetServices(c.Request.Context(), c.Param("id"), req.Services)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, ctl.buildQuote(c, draft))
}

// UpdateSeasonal gắn chương trình giảm giá lễ hội đang chạy vào draft.
// Chương trình không áp dụng cho khách sạn của draft thì báo giá sẽ
// tính mức giảm bằng 0.
func (ctl *DraftController) UpdateSeasonal(c *gin.Context) {
	var req dto.UpdateSeasonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	draft, err := ctl.drafts.SetSeasonal(c.Request.Context(), c.Param("id"), req.Seasonal)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, ctl.buildQuote(c, draft))
}

// DeleteDraft hủy draft khi khách rời màn hình
func (ctl *DraftController) DeleteDraft(c *gin.Context) {
	if err := ctl.drafts.Discard(c.Request.Context(), c.Param("id")); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}
