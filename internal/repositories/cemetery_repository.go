package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"
)

type CemeteryRepository interface {
	FindAll(ctx context.Context) ([]db_models.Cemetery, error)
	Upsert(ctx context.Context, cemetery *db_models.Cemetery) error
}

type cemeteryRepository struct {
	db *gorm.DB
}

func NewCemeteryRepository(db *gorm.DB) CemeteryRepository {
	return &cemeteryRepository{db: db}
}

func (r *cemeteryRepository) FindAll(ctx context.Context) ([]db_models.Cemetery, error) {
	var cemeteries []db_models.Cemetery
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cemeteries).Error
	if err != nil {
		return nil, err
	}
	return cemeteries, nil
}

// Upsert is used by the seeder only; request handlers never write here.
func (r *cemeteryRepository) Upsert(ctx context.Context, cemetery *db_models.Cemetery) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(cemetery).Error
}
