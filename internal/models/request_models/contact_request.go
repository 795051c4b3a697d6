package request_models

// ContactRequest carries both the single-create and bulk-import rows.
// Validation happens in the service so the bulk path can skip bad rows
// instead of rejecting the batch.
type ContactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Notes          string `json:"notes"`
	GooglePlusCode string `json:"googlePlusCode"`
}
