package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/request_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Check credentials
// @Description Verifies email and password; flags the first successful login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}
