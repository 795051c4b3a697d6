package services

import (
	"context"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/repositories"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

type CemeteryServiceInterface interface {
	List(ctx context.Context) ([]db_models.Cemetery, error)
}

type CemeteryService struct {
	cemeteryRepo repositories.CemeteryRepository
}

func NewCemeteryService(cemeteryRepo repositories.CemeteryRepository) CemeteryServiceInterface {
	return &CemeteryService{cemeteryRepo: cemeteryRepo}
}

func (s *CemeteryService) List(ctx context.Context) ([]db_models.Cemetery, error) {
	cemeteries, err := s.cemeteryRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return cemeteries, nil
}
