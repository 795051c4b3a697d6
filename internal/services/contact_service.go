package services

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/request_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/repositories"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

type ContactServiceInterface interface {
	List(ctx context.Context) ([]db_models.Contact, error)
	Create(ctx context.Context, req request_models.ContactRequest) (*db_models.Contact, error)
	BulkUpsert(ctx context.Context, reqs []request_models.ContactRequest) ([]db_models.Contact, error)
	Delete(ctx context.Context, id string) error
}

type ContactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactServiceInterface {
	return &ContactService{contactRepo: contactRepo}
}

func (s *ContactService) List(ctx context.Context) ([]db_models.Contact, error) {
	contacts, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return contacts, nil
}

func (s *ContactService) Create(ctx context.Context, req request_models.ContactRequest) (*db_models.Contact, error) {
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", utils.ErrValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email format", utils.ErrValidation)
	}

	existing, err := s.contactRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	contact := &db_models.Contact{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Notes:          req.Notes,
		GooglePlusCode: req.GooglePlusCode,
	}
	if err := s.contactRepo.Insert(ctx, contact); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return contact, nil
}

// BulkUpsert processes every row independently: rows missing name or
// email are skipped, rows whose email already exists are updated in
// place, and a database failure on one row never aborts the rest.
func (s *ContactService) BulkUpsert(ctx context.Context, reqs []request_models.ContactRequest) ([]db_models.Contact, error) {
	saved := make([]db_models.Contact, 0, len(reqs))

	for _, req := range reqs {
		if req.Name == "" || req.Email == "" {
			continue
		}

		existing, err := s.contactRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			log.Printf("Bulk import: lookup failed for %s: %v", req.Email, err)
			continue
		}

		if existing != nil {
			existing.Name = req.Name
			existing.Phone = req.Phone
			existing.Notes = req.Notes
			existing.GooglePlusCode = req.GooglePlusCode
			if err := s.contactRepo.Update(ctx, existing); err != nil {
				log.Printf("Bulk import: update failed for %s: %v", req.Email, err)
				continue
			}
			saved = append(saved, *existing)
			continue
		}

		contact := db_models.Contact{
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Notes:          req.Notes,
			GooglePlusCode: req.GooglePlusCode,
		}
		if err := s.contactRepo.Insert(ctx, &contact); err != nil {
			log.Printf("Bulk import: insert failed for %s: %v", req.Email, err)
			continue
		}
		saved = append(saved, contact)
	}

	return saved, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	contactID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid contact id format", utils.ErrValidation)
	}

	affected, err := s.contactRepo.DeleteByID(ctx, uint(contactID))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrContactNotFound
	}
	return nil
}
