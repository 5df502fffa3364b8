package models

import (
  "time"
)

type Mint struct {
  ID          uint      `gorm:"column:mint_id;primaryKey"`
  TweetID     string    `gorm:"size:50;not null;index"`
  Tweet       *Tweet    `gorm:"foreignKey:TweetID;references:TweetID;constraint:OnDelete:CASCADE"`
  UserID      *uint     `gorm:"column:user_id"`
  User        *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL"`
  TxSignature *string   `gorm:"size:100;uniqueIndex"`
  MintStatus  string    `gorm:"size:20;not null;default:pending"`
  CreatedAt   time.Time `gorm:"not null"`
  UpdatedAt   time.Time
}

func (m *Mint) TableName() string {
  return "mints"
}
