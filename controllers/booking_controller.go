package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/backend"
	"storefront/dto"
	"storefront/middleware"
	"storefront/models"
	"storefront/response"
	"storefront/services"
	"storefront/validator"
)

// BookingController phục vụ panel gợi ý tổ hợp phòng và báo giá độc lập
type BookingController struct {
	inventory *services.InventoryService
	pricing   *services.PricingService
	backend   *backend.Client
}

func NewBookingController(inventory *services.InventoryService, pricing *services.PricingService, client *backend.Client) *BookingController {
	return &BookingController{
		inventory: inventory,
		pricing:   pricing,
		backend:   client,
	}
}

// SuggestCombo gợi ý đúng số phòng khách yêu cầu cho panel gợi ý.
// Gợi ý có thể thiếu chỗ; response kèm cờ đủ/thiếu để UI cảnh báo
// trước khi cho đặt.
func (ctl *BookingController) SuggestCombo(c *gin.Context) {
	var req dto.SuggestComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStay(&req.Stay); err != nil {
		response.AppError(c, err)
		return
	}
	if req.RoomsNeeded <= 0 {
		response.BadRequest(c, "Số phòng yêu cầu phải lớn hơn 0")
		return
	}

	token := middleware.BackendToken(c)
	rooms, err := ctl.backend.GetRooms(c.Request.Context(), token, req.HotelID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	roomIDs := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		if room.IsAvailable() {
			roomIDs = append(roomIDs, room.RoomId)
		}
	}
	freeUnits, err := ctl.inventory.CheckRooms(c.Request.Context(), token, roomIDs, req.Stay.CheckInDate, req.Stay.CheckOutDate)
	if err != nil {
		response.AppError(c, err)
		return
	}

	candidates := make([]models.RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		candidates = append(candidates, models.RoomAvailability{Room: room, FreeUnits: freeUnits[room.RoomId]})
	}

	totalGuests := req.Stay.TotalGuests()
	picks := services.SuggestCombo(candidates, totalGuests, req.RoomsNeeded)

	capacity := 0
	for i := range picks {
		capacity += picks[i].Capacity()
	}

	response.Success(c, gin.H{
		"picks":      picks,
		"sufficient": capacity >= totalGuests,
		"capacity":   capacity,
	})
}

// Quote báo giá độc lập cho một loại phòng (màn chi tiết phòng)
func (ctl *BookingController) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	stay := models.StayRequest{CheckInDate: req.CheckInDate, CheckOutDate: req.CheckOutDate, Adults: 1}
	if err := validator.ValidateStay(&stay); err != nil {
		response.AppError(c, err)
		return
	}

	units := req.Units
	if units <= 0 {
		units = 1
	}

	token := middleware.BackendToken(c)
	room, free, err := ctl.inventory.ResolveRoom(c.Request.Context(), token, req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.AppError(c, err)
		return
	}
	if free < units {
		response.Conflict(c, "Số phòng trống không đủ cho lựa chọn này")
		return
	}

	breakdown, err := ctl.pricing.Quote(c.Request.Context(), token, room, stay.Nights(), units, nil, req.DiscountCodes, nil)
	if err != nil {
		response.SuccessWithNotice(c, gin.H{"room": room, "freeUnits": free, "breakdown": breakdown}, "Mã giảm giá không hợp lệ hoặc đã hết hạn")
		return
	}
	response.Success(c, gin.H{"room": room, "freeUnits": free, "breakdown": breakdown})
}
