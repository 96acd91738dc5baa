package backend

import (
	"context"
	"fmt"

	"storefront/dto"
	"storefront/errors"
)

// CreateGatewayPayment tạo phiên thanh toán trên cổng ngoài (momo, vnpay)
// và trả về URL chuyển hướng cho khách.
func (c *Client) CreateGatewayPayment(ctx context.Context, token, provider string, req dto.CreateGatewayRequest) (string, error) {
	var out dto.CreateGatewayResponse
	path := fmt.Sprintf("/payments/%s/create", provider)
	if err := c.post(ctx, path, token, req, &out); err != nil {
		return "", err
	}
	if out.PayURL == "" {
		return "", errors.NewAppError(errors.ErrCodeGateway, "Cổng thanh toán không trả về địa chỉ chuyển hướng", nil)
	}
	return out.PayURL, nil
}
