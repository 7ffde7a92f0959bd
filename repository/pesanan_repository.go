package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/siinmedia/jastiphemat/models"
	"gorm.io/gorm"
)

type PesananRepository interface {
	Create(ctx context.Context, p *models.Pesanan) error
	List(ctx context.Context) ([]models.Pesanan, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Pesanan, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error
}

type pesananRepository struct {
	db *gorm.DB
}

func NewPesananRepository(db *gorm.DB) PesananRepository {
	return &pesananRepository{db: db}
}

func (r *pesananRepository) Create(ctx context.Context, p *models.Pesanan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// List returns every order, newest first.
func (r *pesananRepository) List(ctx context.Context) ([]models.Pesanan, error) {
	var list []models.Pesanan
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *pesananRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Pesanan, error) {
	var p models.Pesanan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *pesananRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Pesanan{}).Count(&count).Error
	return count, err
}

// UpdateStatus only applies when the row still has status `from`, so two
// admins advancing the same order cannot skip a step.
func (r *pesananRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	result := r.db.WithContext(ctx).Model(&models.Pesanan{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}
