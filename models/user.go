package models

import (
  "time"
)

type User struct {
  ID            uint      `gorm:"column:user_id;primaryKey"`
  WalletAddress string    `gorm:"size:100;not null;uniqueIndex"`
  Username      string    `gorm:"size:100"`
  Email         string    `gorm:"size:255"`
  CreatedAt     time.Time `gorm:"not null"`
}

func (m *User) TableName() string {
  return "users"
}
