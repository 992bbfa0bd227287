package domain

// UserProfile is only known when the profile service answered. A nil
// profile means the kiosk runs anonymously.
type UserProfile struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
