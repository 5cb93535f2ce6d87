package domain

import "time"

type TokenType string

const (
	TokenTypeShortLived TokenType = "short_lived"
	TokenTypeLongLived  TokenType = "long_lived"
	TokenTypeAPIKey     TokenType = "api_key"
)

const ProviderFacebook = "facebook"

// Credential is one stored integration token, unique per provider. The
// exchange flow mutates the same row in place when a short-lived token is
// upgraded to a long-lived one.
type Credential struct {
	ID          int64
	Provider    string
	TokenType   TokenType
	AccessToken string
	UpdatedAt   time.Time
}
