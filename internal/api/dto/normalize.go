package dto

// NormalizeLabelRequest is the body of POST /api/v1/normalize/brand and /api/v1/normalize/category
type NormalizeLabelRequest struct {
	Label string `json:"label" binding:"required"`
	// AutoCreate creates a non-canonical label when nothing matches
	AutoCreate bool `json:"auto_create"`
}

// NormalizeLabelResponse is the resolution of one raw label
type NormalizeLabelResponse struct {
	Input     string `json:"input"`
	Resolved  bool   `json:"resolved"`
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Canonical bool   `json:"canonical"`
}
