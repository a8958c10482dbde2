package model

import "time"

type Event struct {
	DTO
	Name      string     `gorm:"size:255;not null" json:"name"`
	Slug      string     `gorm:"size:255;uniqueIndex" json:"slug"`
	Venue     string     `gorm:"size:255" json:"venue"`
	StartTime time.Time  `gorm:"not null" json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Active    *bool      `gorm:"not null;default:true" json:"active"`
}

type CreateEventInput struct {
	Name      string     `json:"name" validate:"required"`
	Venue     string     `json:"venue" validate:"omitempty"`
	StartTime time.Time  `json:"startTime" validate:"required"`
	EndTime   *time.Time `json:"endTime" validate:"omitempty"`
}
