package backend

import (
	"context"
	"fmt"

	"storefront/dto"
	"storefront/models"
)

// CheckAvailability hỏi backend số phòng trống tối thiểu của một loại phòng trong kỳ nghỉ
func (c *Client) CheckAvailability(ctx context.Context, token string, req dto.CheckAvailabilityRequest) (int, error) {
	var out dto.CheckAvailabilityResponse
	if err := c.post(ctx, "/rooms/check-availability", token, req, &out); err != nil {
		return 0, err
	}
	if out.AvailableUnits < 0 {
		return 0, nil
	}
	return out.AvailableUnits, nil
}

// GetRoomByID lấy thông tin loại phòng kèm các booking hiện có
func (c *Client) GetRoomByID(ctx context.Context, token string, roomID uint) (*dto.RoomDetailResponse, error) {
	var out dto.RoomDetailResponse
	req := map[string]uint{"roomId": roomID}
	if err := c.post(ctx, "/rooms/by-id", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRooms lấy danh sách phòng của một khách sạn
func (c *Client) GetRooms(ctx context.Context, token string, hotelID uint) ([]models.Room, error) {
	var out []models.Room
	path := fmt.Sprintf("/hotels/%d/rooms", hotelID)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}
