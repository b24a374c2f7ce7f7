package model

import "time"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID                  int64   `gorm:"primaryKey;autoIncrement"`
	Name                string  `gorm:"type:varchar(100);not null;index"`
	Category            string  `gorm:"type:varchar(50);not null;index"`
	OriginalPrice       float64 `gorm:"not null"`
	NewPrice            float64
	PercentageDiscount  float64
	OfferExpirationDate time.Time
	Image               string `gorm:"column:product_image;type:varchar(255);not null;default:productDefault.jpg"`
	BusinessID          int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
