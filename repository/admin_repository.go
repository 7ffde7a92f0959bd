package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siinmedia/jastiphemat/models"
	"gorm.io/gorm"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	Create(ctx context.Context, a *models.Admin) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *adminRepository) Create(ctx context.Context, a *models.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adminRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Admin{}).Where("id = ?", id).Update("last_login", at).Error
}
