package model

import "time"

type Ingredient struct {
	ID               int64  `gorm:"primaryKey;autoIncrement:false"`
	Name             string `gorm:"not null;uniqueIndex"`
	Brand            *string
	RefUnitOfMeasure string    `gorm:"not null"`
	RefQuantity      float64   `gorm:"not null;default:1;check:chk_ingredient_ref_quantity,ref_quantity > 0"`
	RefPrice         float64   `gorm:"not null;default:0;check:chk_ingredient_ref_price,ref_price >= 0"`
	Available        bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (Ingredient) TableName() string {
	return "ingredient"
}
