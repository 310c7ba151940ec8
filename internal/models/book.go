package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Book struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Title     string          `gorm:"not null" json:"title"`
	Author    string          `gorm:"not null" json:"author"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     uint            `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}
