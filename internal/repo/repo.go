package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/furniture_store/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

func (r *GormRepo) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(models.All()...)
}

// Reset drops and recreates every table.
func (r *GormRepo) Reset(ctx context.Context) error {
	db := r.DB.WithContext(ctx)
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return err
		}
	}
	return db.AutoMigrate(all...)
}
