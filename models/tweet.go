package models

import (
  "time"
)

type Tweet struct {
  TweetID     string    `gorm:"column:tweet_id;size:50;primaryKey"`
  MintAddress string    `gorm:"size:100;not null;uniqueIndex"`
  OwnerWallet string    `gorm:"size:100;not null"`
  MintDate    time.Time `gorm:"autoCreateTime"`
  MetadataURI string    `gorm:"not null"`
  PriceSol    *float64  `gorm:"type:numeric(10,4)"`
  Likes       int       `gorm:"not null;default:0"`
  Retweets    int       `gorm:"not null;default:0"`
  Replies     int       `gorm:"not null;default:0"`
  Views       int       `gorm:"not null;default:0"`
}

func (m *Tweet) TableName() string {
  return "tweets"
}
