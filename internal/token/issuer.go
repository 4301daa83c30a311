package token

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/saberalex11/education/internal/clients"
	"github.com/saberalex11/education/internal/models"
	"github.com/saberalex11/education/internal/storage"
)

// TokenService produces an access token for an authorized authentication.
type TokenService interface {
	CreateAccessToken(auth *models.OAuthAuthentication) (*models.AccessToken, error)
}

// Issuer runs the post-login issuance flow: validate the calling client
// from its Basic credentials, build the token request on behalf of the
// authenticated user, mint the token, and commit it to the token store.
type Issuer struct {
	registry clients.Registry
	service  TokenService
	store    storage.TokenStore
	logger   *slog.Logger
}

func NewIssuer(registry clients.Registry, service TokenService, store storage.TokenStore, logger *slog.Logger) *Issuer {
	return &Issuer{
		registry: registry,
		service:  service,
		store:    store,
		logger:   logger,
	}
}

// Issue authenticates the client carried in authorizationHeader and mints
// an access token bound to the authenticated user. The token is persisted
// before it is returned, so a token handed to the caller is always usable.
func (i *Issuer) Issue(ctx context.Context, authorizationHeader string, user *models.UserAuthentication) (*models.AccessToken, error) {
	clientID, clientSecret, err := ParseBasicHeader(authorizationHeader)
	if err != nil {
		return nil, err
	}

	client, err := i.registry.Find(ctx, clientID)
	if errors.Is(err, clients.ErrNotFound) {
		return nil, &Error{Kind: KindUnknownClient, Message: "clientId对应的配置信息不存在:" + clientID}
	}
	if err != nil {
		return nil, &Error{Kind: KindIssuanceFailed, Message: "failed to load client", cause: err}
	}

	if subtle.ConstantTimeCompare([]byte(client.Secret), []byte(clientSecret)) != 1 {
		return nil, &Error{Kind: KindClientSecretMismatch, Message: "clientSecret不匹配:" + clientID}
	}

	request := models.TokenRequest{
		Parameters: map[string]string{},
		ClientID:   clientID,
		Scopes:     client.Scopes,
		GrantType:  models.GrantTypeCustom,
	}

	oauthRequest := models.NewOAuthRequest(request, *client)
	oauthAuth := &models.OAuthAuthentication{
		Request: oauthRequest,
		User:    *user,
	}

	accessToken, err := i.service.CreateAccessToken(oauthAuth)
	if err != nil {
		return nil, &Error{Kind: KindIssuanceFailed, Message: "failed to create access token", cause: err}
	}

	// The store write must complete before the token is released to the
	// caller; a token in a response always has a binding in the store.
	if err := i.store.Store(ctx, accessToken, oauthAuth); err != nil {
		return nil, &Error{Kind: KindIssuanceFailed, Message: "failed to persist access token", cause: err}
	}

	i.logger.Info("access token issued", "client_id", clientID, "username", user.Username)

	return accessToken, nil
}
