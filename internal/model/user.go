package model

import "time"

type User struct {
	ID           uint64 `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string `gorm:"size:64;not null"`
	Email        string `gorm:"size:255;not null"` // logically unique, checked before every write
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time

	Reviews []Review `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }
