package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"storefront/services"
)

// InitCronJobs khởi tạo các cron jobs của engine
func InitCronJobs(c *cron.Cron, orchestrator *services.PaymentOrchestrator) error {
	// Lưới an toàn sau các timer theo session: quét session chuyển khoản
	// quá hạn mỗi phút. Expire chặn trạng thái cuối nên quét lặp vô hại.
	_, err := c.AddFunc("@every 1m", func() {
		if n := orchestrator.SweepExpired(time.Now()); n > 0 {
			log.Printf("Đã đóng %d phiên chuyển khoản quá hạn", n)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
