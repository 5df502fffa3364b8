package models

import (
  "time"
)

type Payment struct {
  ID            uint      `gorm:"column:payment_id;primaryKey"`
  UserID        *uint     `gorm:"column:user_id"`
  User          *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL"`
  MintID        uint      `gorm:"column:mint_id;not null;index"`
  Mint          *Mint     `gorm:"foreignKey:MintID;references:ID;constraint:OnDelete:CASCADE"`
  AmountSol     float64   `gorm:"type:numeric(10,4);not null"`
  TxSignature   *string   `gorm:"size:100;uniqueIndex"`
  PaymentStatus string    `gorm:"size:20;not null;default:pending"`
  CreatedAt     time.Time `gorm:"not null"`
}

func (m *Payment) TableName() string {
  return "payments"
}
