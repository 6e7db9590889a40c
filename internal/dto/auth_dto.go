package dto

// WhoamiResponse reports the current identity and its role groups so the
// frontend can decide which views to render.
type WhoamiResponse struct {
	IsAuthenticated bool     `json:"is_authenticated"`
	Username        string   `json:"username,omitempty"`
	Groups          []string `json:"groups,omitempty"`
}
