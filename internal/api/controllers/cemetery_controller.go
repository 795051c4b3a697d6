package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

type CemeteryController struct {
	cemeteryService services.CemeteryServiceInterface
}

func NewCemeteryController(cemeteryService services.CemeteryServiceInterface) *CemeteryController {
	return &CemeteryController{cemeteryService: cemeteryService}
}

// List godoc
// @Summary List cemeteries
// @Tags Cemeteries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /cemeteries [get]
func (cc *CemeteryController) List(c *gin.Context) {
	cemeteries, err := cc.cemeteryService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cemeteries, "")
}
