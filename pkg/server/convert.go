package server

import (
	"time"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
)

type Ingredient struct {
	ID               int64     `json:"id,string"`
	Name             string    `json:"name"`
	Brand            *string   `json:"brand"`
	RefUnitOfMeasure string    `json:"ref_unit_of_measure"`
	RefQuantity      float64   `json:"ref_quantity"`
	RefPrice         float64   `json:"ref_price"`
	Available        bool      `json:"available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type UnitOfMeasure struct {
	Name     string `json:"name"`
	NameLong string `json:"name_long"`
}

type UnitConversion struct {
	UomFrom string  `json:"uom_from"`
	UomTo   string  `json:"uom_to"`
	Factor  float64 `json:"factor"`
}

func IngredientsFromModel(ingredients []*model.Ingredient) []Ingredient {
	converted := make([]Ingredient, 0, len(ingredients))

	for _, ingredient := range ingredients {
		converted = append(converted, IngredientFromModel(ingredient))
	}

	return converted
}

func IngredientFromModel(ingredient *model.Ingredient) Ingredient {
	return Ingredient{
		ID:               ingredient.ID,
		Name:             ingredient.Name,
		Brand:            ingredient.Brand,
		RefUnitOfMeasure: ingredient.RefUnitOfMeasure,
		RefQuantity:      ingredient.RefQuantity,
		RefPrice:         ingredient.RefPrice,
		Available:        ingredient.Available,
		CreatedAt:        ingredient.CreatedAt,
		UpdatedAt:        ingredient.UpdatedAt,
	}
}

func UnitsFromModel(units []*model.UnitOfMeasure) []UnitOfMeasure {
	converted := make([]UnitOfMeasure, 0, len(units))

	for _, unit := range units {
		converted = append(converted, UnitOfMeasure{Name: unit.Name, NameLong: unit.NameLong})
	}

	return converted
}

func ConversionsFromModel(conversions []*model.UnitConversion) []UnitConversion {
	converted := make([]UnitConversion, 0, len(conversions))

	for _, conversion := range conversions {
		converted = append(converted, UnitConversion{UomFrom: conversion.UomFrom, UomTo: conversion.UomTo, Factor: conversion.Factor})
	}

	return converted
}
