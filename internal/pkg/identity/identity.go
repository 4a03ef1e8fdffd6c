package identity

import "tracker/internal/pkg/config"

// Provider отдает идентичность текущей пользовательской сессии.
// Read-only: трекинг использует ее для подсчета непрочитанных сообщений
// и как ActorID локальных переходов статуса.
type Provider struct {
	userID string
	role   string
}

func NewProvider(cfg *config.Identity) *Provider {
	return &Provider{
		userID: cfg.UserID,
		role:   cfg.Role,
	}
}

func (p *Provider) CurrentUserID() string {
	return p.userID
}

func (p *Provider) CurrentUserRole() string {
	return p.role
}
