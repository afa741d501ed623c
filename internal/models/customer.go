package models

import "time"

type Customer struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"size:140;index"`
	Email     string `gorm:"size:140;uniqueIndex"`
	ImageURL  string `gorm:"size:255"`
	CreatedAt time.Time
}
