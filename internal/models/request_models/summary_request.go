package request_models

// SummaryRequest is the metadata half of a work-summary submission.
// It arrives as multipart form fields on the single-shot endpoint and
// as JSON on the finalize endpoint.
type SummaryRequest struct {
	ContactName       string   `form:"contactName" json:"contactName"`
	Email             string   `form:"email" json:"email"`
	Description       string   `form:"description" json:"description"`
	Greeting          string   `form:"greeting" json:"greeting"`
	CemeteryName      string   `form:"cemeteryName" json:"cemeteryName"`
	GraveLocation     string   `form:"graveLocation" json:"graveLocation"`
	ServicesPerformed []string `form:"servicesPerformed" json:"servicesPerformed"`
}

type FinalizeRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	SummaryRequest
}
