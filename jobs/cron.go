package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// StayCompleter định nghĩa interface cho việc tự động trả phòng
type StayCompleter interface {
	CompleteExpiredStays(ctx context.Context) (int, error)
}

var stayCompleter StayCompleter

// SetStayCompleter thiết lập implementation cho StayCompleter
func SetStayCompleter(s StayCompleter) {
	stayCompleter = s
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày: chuyển các booking CHECKED_IN đã qua
	// ngày trả phòng sang CHECKED_OUT qua state machine của engine
	_, err := c.AddFunc("0 0 * * *", func() {
		if stayCompleter == nil {
			log.Printf("StayCompleter is not configured")
			return
		}
		n, err := stayCompleter.CompleteExpiredStays(context.Background())
		if err != nil {
			log.Printf("auto checkout job failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("auto checkout job completed %d stays", n)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
