package response_models

type SummaryDelivery struct {
	SummaryID     uint     `json:"summaryId,omitempty"`
	PhotosBefore  []string `json:"photosBefore"`
	PhotosAfter   []string `json:"photosAfter"`
	AttachedCount int      `json:"attachedCount"`
}

type UploadSessionState struct {
	SessionID    string   `json:"sessionId"`
	PhotosBefore []string `json:"photosBefore"`
	PhotosAfter  []string `json:"photosAfter"`
}
