package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"
)

type SummaryRepository interface {
	Insert(ctx context.Context, summary *db_models.Summary) error
	FindAll(ctx context.Context) ([]db_models.Summary, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Insert(ctx context.Context, summary *db_models.Summary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

func (r *summaryRepository) FindAll(ctx context.Context) ([]db_models.Summary, error) {
	var summaries []db_models.Summary
	err := r.db.WithContext(ctx).Order("sent_at DESC").Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
