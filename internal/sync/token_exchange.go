package sync

import (
	"github.com/pkg/errors"
	"github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/metaclient"
	"github.com/prakanlife/meta-ads-sync/infrastructure/repository"
	"github.com/prakanlife/meta-ads-sync/internal/config"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
	"github.com/prakanlife/meta-ads-sync/pkg/log"
)

// Exchanger upgrades a stored short-lived token to a long-lived one
type Exchanger interface {
	Exchange() error
}

type TokenExchanger struct {
	cfg            *config.Config
	credentialRepo repository.CredentialRepository
}

func NewTokenExchanger(cfg *config.Config, credentialRepo repository.CredentialRepository) *TokenExchanger {
	return &TokenExchanger{
		cfg:            cfg,
		credentialRepo: credentialRepo,
	}
}

// Exchange looks up the most recent short-lived Facebook credential and
// trades it for a long-lived token, updating the row in place. A missing
// short-lived token is a normal outcome, not an error; callers treat any
// returned error as non-fatal.
func (e *TokenExchanger) Exchange() error {
	credential, err := e.credentialRepo.GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeShortLived)
	if err != nil {
		return errors.Wrap(err, "looking up short-lived credential")
	}

	if credential == nil {
		log.L.Debug("No short-lived token stored, nothing to exchange")
		return nil
	}

	tokenResp, err := metaclient.ExchangeToken(
		credential.AccessToken,
		e.cfg.Meta.AppID,
		e.cfg.Meta.AppSecret,
		e.cfg.Meta.BaseURL,
		e.cfg.Meta.Version,
	)
	if err != nil {
		return errors.Wrap(err, "exchanging token")
	}

	credential.TokenType = domain.TokenTypeLongLived
	credential.AccessToken = tokenResp.AccessToken

	if err := e.credentialRepo.Upsert(credential); err != nil {
		return errors.Wrap(err, "persisting long-lived credential")
	}

	log.L.WithField("provider", domain.ProviderFacebook).
		Info("Short-lived token exchanged for a long-lived one")

	return nil
}
