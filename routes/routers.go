package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/backend"
	"storefront/controllers"
	middlewares "storefront/middleware"
	"storefront/services"
)

// SetupRoutes gắn toàn bộ endpoint của engine vào router
func SetupRoutes(router *gin.Engine, drafts *services.DraftService, inventory *services.InventoryService, pricing *services.PricingService, orchestrator *services.PaymentOrchestrator, client *backend.Client) {
	draftController := controllers.NewDraftController(drafts, inventory, pricing, client)
	bookingController := controllers.NewBookingController(inventory, pricing, client)
	paymentController := controllers.NewPaymentController(drafts, inventory, pricing, orchestrator, client)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/drafts", draftController.CreateDraft)
	v1.GET("/drafts/:id", draftController.GetDraft)
	v1.PUT("/drafts/:id/stay", draftController.UpdateStay)
	v1.PUT("/drafts/:id/rooms", draftController.SelectRooms)
	v1.PUT("/drafts/:id/guest", draftController.UpdateGuest)
	v1.PUT("/drafts/:id/payment", draftController.UpdatePayment)
	v1.PUT("/drafts/:id/discount", draftController.UpdateDiscount)
	v1.PUT("/drafts/:id/services", draftController.UpdateServices)
	v1.PUT("/drafts/:id/seasonal", draftController.UpdateSeasonal)
	v1.DELETE("/drafts/:id", draftController.DeleteDraft)

	v1.POST("/allocation/suggest", bookingController.SuggestCombo)
	v1.POST("/quote", bookingController.Quote)

	v1.POST("/checkout", paymentController.Checkout)
	v1.GET("/sessions/:bookingId", paymentController.GetSession)
	v1.PUT("/sessions/:bookingId/confirm", paymentController.ConfirmPayment)
	v1.PUT("/sessions/:bookingId/recheck", paymentController.RecheckPayment)
	v1.DELETE("/sessions/:bookingId", paymentController.CloseSession)
}
