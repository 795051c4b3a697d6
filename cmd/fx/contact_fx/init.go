package contact_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/repositories"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
)

var Module = fx.Provide(
	provideContactService, provideContactRepo)

func provideContactRepo(db *gorm.DB) repositories.ContactRepository {
	return repositories.NewContactRepository(db)
}

func provideContactService(contactRepo repositories.ContactRepository) services.ContactServiceInterface {
	return services.NewContactService(contactRepo)
}
