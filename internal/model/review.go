package model

import "time"

type Review struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	UserID     uint64 `gorm:"index;not null"`
	ReviewText string `gorm:"type:text;not null"`
	UploadedAt time.Time
}

func (Review) TableName() string { return "reviews" }
