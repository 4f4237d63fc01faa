package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitalcare/clinic-api/internal/models"
	center "github.com/vitalcare/clinic-api/internal/usecase/center"
)

type CenterGormRepository struct {
	db *gorm.DB
}

func NewCenterGormRepository(db *gorm.DB) *CenterGormRepository {
	return &CenterGormRepository{db: db}
}

func (r *CenterGormRepository) CenterExists(
	ctx context.Context,
	name, address string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Center{}).
		Where("name = ? AND address = ?", name, address).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *CenterGormRepository) CreateCenter(
	ctx context.Context,
	c *models.Center,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Compile-time check
var _ center.Repository = (*CenterGormRepository)(nil)
