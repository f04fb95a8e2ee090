package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/model"
)

func (r *Repository) GetUnit(ctx context.Context, name string) (*model.UnitOfMeasure, error) {
	var unit model.UnitOfMeasure

	if result := r.DB.WithContext(ctx).Where("name = ?", name).Take(&unit); result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &unit, nil
}

func (r *Repository) ListUnits(ctx context.Context) ([]*model.UnitOfMeasure, error) {
	var units []*model.UnitOfMeasure

	if result := r.DB.WithContext(ctx).Order("name").Find(&units); result.Error != nil {
		return nil, result.Error
	}

	return units, nil
}

// AddUnits inserts the given units, leaving existing ones untouched.
func (r *Repository) AddUnits(ctx context.Context, units []model.UnitOfMeasure) (int64, error) {
	if len(units) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&units)

	return result.RowsAffected, translateError(result.Error)
}

func (r *Repository) AddConversions(ctx context.Context, conversions []model.UnitConversion) (int64, error) {
	if len(conversions) == 0 {
		return 0, nil
	}

	for _, conversion := range conversions {
		if conversion.Factor <= 0 {
			return 0, fmt.Errorf("%w: conversion factor from %s to %s must be greater than 0, got %v",
				ErrInvalidValue, conversion.UomFrom, conversion.UomTo, conversion.Factor)
		}
	}

	result := r.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&conversions)

	return result.RowsAffected, translateError(result.Error)
}

func (r *Repository) ListConversions(ctx context.Context, from string) ([]*model.UnitConversion, error) {
	var conversions []*model.UnitConversion

	result := r.DB.WithContext(ctx).Where("uom_from = ?", from).Order("uom_to").Find(&conversions)
	if result.Error != nil {
		return nil, result.Error
	}

	return conversions, nil
}
