package domain

// Profile is a user record as served by the external auth provider.
// The provider owns identity; this service never stores users itself.
type Profile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

// DisplayName prefers the full name and falls back to the username.
func (p *Profile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.Username
	}
}
