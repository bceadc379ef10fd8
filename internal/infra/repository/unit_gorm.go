package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UnitGormRepository struct {
	db *gorm.DB
}

func NewUnitGormRepository(db *gorm.DB) *UnitGormRepository {
	return &UnitGormRepository{db: db}
}

// Timezone devolve o fuso cadastrado da unidade ("" quando não definido).
func (r *UnitGormRepository) Timezone(ctx context.Context, unitID string) (string, error) {
	var u models.Unit
	if err := r.db.WithContext(ctx).
		Select("id", "timezone").
		Where("id = ?", unitID).
		First(&u).Error; err != nil {
		return "", notFound(err)
	}
	return u.Timezone, nil
}
