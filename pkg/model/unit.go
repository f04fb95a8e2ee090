package model

import "time"

type UnitOfMeasure struct {
	Name      string `gorm:"primaryKey"`
	NameLong  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UnitOfMeasure) TableName() string {
	return "unit_of_measure"
}

// UnitConversion is reference data only, nothing converts quantities with it yet.
type UnitConversion struct {
	UomFrom string  `gorm:"primaryKey"`
	UomTo   string  `gorm:"primaryKey"`
	Factor  float64 `gorm:"not null;check:chk_uom_conversion_factor,factor > 0"`

	From UnitOfMeasure `gorm:"foreignKey:UomFrom;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	To   UnitOfMeasure `gorm:"foreignKey:UomTo;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (UnitConversion) TableName() string {
	return "uom_conversion"
}

var DefaultUnits = []UnitOfMeasure{
	{Name: "g", NameLong: "gram"},
	{Name: "kg", NameLong: "kilogram"},
	{Name: "ml", NameLong: "millilitre"},
	{Name: "l", NameLong: "litre"},
	{Name: "tsp", NameLong: "teaspoon"},
	{Name: "tbsp", NameLong: "tablespoon"},
	{Name: "cup", NameLong: "cup"},
	{Name: "pc", NameLong: "piece"},
	{Name: "pinch", NameLong: "pinch"},
}

var DefaultConversions = []UnitConversion{
	{UomFrom: "kg", UomTo: "g", Factor: 1000},
	{UomFrom: "g", UomTo: "kg", Factor: 0.001},
	{UomFrom: "l", UomTo: "ml", Factor: 1000},
	{UomFrom: "ml", UomTo: "l", Factor: 0.001},
	{UomFrom: "tbsp", UomTo: "tsp", Factor: 3},
	{UomFrom: "tsp", UomTo: "tbsp", Factor: 1.0 / 3},
	{UomFrom: "tbsp", UomTo: "ml", Factor: 15},
	{UomFrom: "tsp", UomTo: "ml", Factor: 5},
	{UomFrom: "cup", UomTo: "ml", Factor: 240},
}
