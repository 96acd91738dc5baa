package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/errors"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// SuccessWithNotice trả về thành công kèm thông báo tạm thời
func SuccessWithNotice(c *gin.Context, data interface{}, notice string) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: notice,
		Data: data,
	})
}

// Error trả về response lỗi
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Không tìm thấy",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// AppError trả về response theo phân loại lỗi của engine
func AppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, Response{Code: 0, Mess: appErr.Message})
	case errors.ErrCodeAvailabilityConflict, errors.ErrCodeCapacityExceeded:
		c.JSON(http.StatusConflict, Response{Code: 0, Mess: appErr.Message})
	case errors.ErrCodeBackend, errors.ErrCodeGateway, errors.ErrCodePaymentSession:
		c.JSON(http.StatusBadGateway, Response{Code: 0, Mess: appErr.Message})
	default:
		c.JSON(http.StatusBadRequest, Response{Code: 0, Mess: appErr.Message})
	}
}
