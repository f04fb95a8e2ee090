package model

import "time"

type Recipe struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	Name        string `gorm:"not null;uniqueIndex"`
	Method      string
	Author      string
	Book        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Recipe) TableName() string {
	return "recipe"
}

// RecipeIngredient links a recipe to one ingredient with the quantity used.
type RecipeIngredient struct {
	RecipeID      int64   `gorm:"primaryKey;autoIncrement:false"`
	IngredientID  int64   `gorm:"primaryKey;autoIncrement:false"`
	UnitOfMeasure string  `gorm:"not null"`
	Quantity      float64 `gorm:"not null;check:chk_recipe_ingredients_quantity,quantity > 0"`

	Ingredient Ingredient    `gorm:"foreignKey:IngredientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Unit       UnitOfMeasure `gorm:"foreignKey:UnitOfMeasure;references:Name;constraint:OnUpdate:CASCADE;"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
