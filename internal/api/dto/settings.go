package dto

// SECRET_MASK replaces credential values in settings responses
const SECRET_MASK = "********"

// SettingsResponse is the flat enrichment configuration surface, keys without prefix
type SettingsResponse struct {
	Values map[string]string `json:"values"`
}

// UpdateSettingsRequest is the body of PUT /api/v1/settings
type UpdateSettingsRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}
