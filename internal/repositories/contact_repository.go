package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"
)

type ContactRepository interface {
	FindAll(ctx context.Context) ([]db_models.Contact, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Contact, error)
	Insert(ctx context.Context, contact *db_models.Contact) error
	Update(ctx context.Context, contact *db_models.Contact) error
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) FindAll(ctx context.Context) ([]db_models.Contact, error) {
	var contacts []db_models.Contact
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) FindByEmail(ctx context.Context, email string) (*db_models.Contact, error) {
	var contact db_models.Contact
	err := r.db.WithContext(ctx).First(&contact, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Insert(ctx context.Context, contact *db_models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) Update(ctx context.Context, contact *db_models.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

// DeleteByID reports the number of rows removed so the service can
// distinguish a missing contact from a successful delete.
func (r *contactRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Contact{}, id)
	return res.RowsAffected, res.Error
}
