package cemetery_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/repositories"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
)

var Module = fx.Provide(
	provideCemeteryService, provideCemeteryRepo)

func provideCemeteryRepo(db *gorm.DB) repositories.CemeteryRepository {
	return repositories.NewCemeteryRepository(db)
}

func provideCemeteryService(cemeteryRepo repositories.CemeteryRepository) services.CemeteryServiceInterface {
	return services.NewCemeteryService(cemeteryRepo)
}
