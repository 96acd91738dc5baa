package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"

	"storefront/dto"
	"storefront/errors"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientOptions{BaseURL: srv.URL})
}

func TestClientDecodesEnvelopeData(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 1,
			"mess": "Thành công",
			"data": dto.CheckAvailabilityResponse{AvailableUnits: 3},
		})
	})

	units, err := client.CheckAvailability(context.Background(), "token-123", dto.CheckAvailabilityRequest{RoomID: 1})
	if err != nil {
		t.Fatalf("CheckAvailability trả lỗi: %v", err)
	}
	if units != 3 {
		t.Errorf("units = %d, muốn 3", units)
	}
}

func TestClientRejectsErrorEnvelope(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0,
			"mess": "Phòng không tồn tại",
		})
	})

	_, err := client.CheckAvailability(context.Background(), "", dto.CheckAvailabilityRequest{RoomID: 1})
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeBackend {
		t.Fatalf("lỗi = %v, muốn %s", err, errors.ErrCodeBackend)
	}
	if appErr.Message != "Phòng không tồn tại" {
		t.Errorf("Message = %q, phải giữ thông báo của backend", appErr.Message)
	}
}

func TestClientMapsNotFound(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0,
			"mess": "Không tìm thấy booking",
		})
	})

	_, err := client.GetBooking(context.Background(), "", 99)
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeNotFound {
		t.Fatalf("lỗi = %v, muốn %s", err, errors.ErrCodeNotFound)
	}
}

func TestClientRejectsUnreachableBackend(t *testing.T) {
	client := NewClient(ClientOptions{BaseURL: "http://127.0.0.1:1"})
	_, err := client.CheckAvailability(context.Background(), "", dto.CheckAvailabilityRequest{RoomID: 1})
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeBackend {
		t.Fatalf("lỗi = %v, muốn %s", err, errors.ErrCodeBackend)
	}
}

func TestCreateGatewayPaymentRequiresPayURL(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 1,
			"mess": "Thành công",
			"data": dto.CreateGatewayResponse{},
		})
	})

	_, err := client.CreateGatewayPayment(context.Background(), "", "momo", dto.CreateGatewayRequest{Amount: 100000})
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeGateway {
		t.Fatalf("lỗi = %v, muốn %s", err, errors.ErrCodeGateway)
	}
}
