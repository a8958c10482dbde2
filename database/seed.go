package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"event_ticketing/model"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	end := parseDate("2026-12-02")
	events := []model.Event{
		{Name: "Đêm nhạc Mùa Thu", Slug: "dem-nhac-mua-thu", Venue: "Nhà hát Hòa Bình", StartTime: parseDate("2026-11-20")},
		{Name: "Tech Summit 2026", Slug: "tech-summit-2026", Venue: "SECC", StartTime: parseDate("2026-12-01"), EndTime: &end},
	}

	for i := range events {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Event{Slug: events[i].Slug}).FirstOrCreate(&events[i]).Error; err != nil {
			log.Println("failed to seed data for event:", events[i].Name, "error:", err)
		}
	}

	tickets := []model.Ticket{
		{Name: "Vé VIP", Price: 1500000, Category: model.CategoryVIP, Quota: 50, EventID: events[0].ID},
		{Name: "Vé thường", Price: 500000, Category: model.CategoryRegular, Quota: 500, EventID: events[0].ID},
		{Name: "Early Bird", Price: 200000, Category: model.CategoryRegular, Quota: 200, EventID: events[1].ID},
	}

	for _, ticket := range tickets {
		if err := db.Where(model.Ticket{Name: ticket.Name, EventID: ticket.EventID}).FirstOrCreate(&ticket).Error; err != nil {
			log.Println("failed to seed data for ticket:", ticket.Name, "error:", err)
		}
	}
}
