package backend

import (
	"context"

	"storefront/dto"
)

// ApplyDiscounts nhờ dịch vụ discount định giá các mã giảm trên giá trị booking
func (c *Client) ApplyDiscounts(ctx context.Context, token string, req dto.ApplyDiscountRequest) (*dto.ApplyDiscountResponse, error) {
	var out dto.ApplyDiscountResponse
	if err := c.post(ctx, "/discounts/apply", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
