package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/request_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

type ContactController struct {
	contactService services.ContactServiceInterface
}

func NewContactController(contactService services.ContactServiceInterface) *ContactController {
	return &ContactController{contactService: contactService}
}

// List godoc
// @Summary List contacts
// @Tags Contacts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /contacts [get]
func (cc *ContactController) List(c *gin.Context) {
	contacts, err := cc.contactService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, contacts, "")
}

// Create godoc
// @Summary Create a contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body request_models.ContactRequest true "Contact payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /contacts [post]
func (cc *ContactController) Create(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	contact, err := cc.contactService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, contact, "Contact created successfully")
}

// BulkImport godoc
// @Summary Import contacts in bulk
// @Description Upserts rows by email; invalid rows are skipped
// @Tags Contacts
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /contacts/bulk [post]
func (cc *ContactController) BulkImport(c *gin.Context) {
	var reqs []request_models.ContactRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Expected array of contacts")
		return
	}

	saved, err := cc.contactService.BulkUpsert(c.Request.Context(), reqs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Contacts imported")
}

// Delete godoc
// @Summary Delete a contact by id
// @Tags Contacts
// @Produce json
// @Param id query string true "Contact id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /contacts [delete]
func (cc *ContactController) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Contact ID is required")
		return
	}

	if err := cc.contactService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Contact deleted successfully")
}
