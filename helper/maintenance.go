package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"event_ticketing/inventory"
)

var maintenanceScheduler gocron.Scheduler

// AutoDisableEndedEventTickets tắt bán (soft-delete) các vé thuộc event
// đã kết thúc. Record giữ nguyên cho lịch sử.
func AutoDisableEndedEventTickets(store inventory.Store, events inventory.EventStore) {
	log.Println("[CRON] AutoDisableEndedEventTickets triggered")

	loc := time.FixedZone("ICT", 7*3600)
	now := time.Now().In(loc)

	all, err := store.List()
	if err != nil {
		log.Printf("Lỗi quét vé: %v", err)
		return
	}

	ended := make(map[uint]bool)
	for _, t := range all {
		if t.Deleted {
			continue
		}
		over, checked := ended[t.EventID]
		if !checked {
			event, err := events.GetEvent(t.EventID)
			if err != nil {
				log.Printf("Lỗi đọc event %d của vé %d: %v", t.EventID, t.ID, err)
				continue
			}
			over = event.EndTime != nil && now.After(*event.EndTime)
			ended[t.EventID] = over
		}
		if !over {
			continue
		}

		t.Deleted = true
		if _, err := store.Update(t); err != nil {
			log.Printf("Lỗi tắt bán vé '%s': %v", t.Name, err)
		} else {
			log.Printf("Đã tắt bán vé '%s' (event %d đã kết thúc)", t.Name, t.EventID)
		}
	}
}

func StartMaintenanceScheduler(store inventory.Store, events inventory.EventStore) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	maintenanceScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 10, 0),
			),
		),
		gocron.NewTask(func() { AutoDisableEndedEventTickets(store, events) }),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Maintenance scheduler started (00:10 ICT)")
}

func StopMaintenanceScheduler() {
	if maintenanceScheduler != nil {
		maintenanceScheduler.Shutdown()
	}
}
