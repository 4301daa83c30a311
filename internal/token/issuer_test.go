package token

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saberalex11/education/internal/clients"
	"github.com/saberalex11/education/internal/models"
	"github.com/saberalex11/education/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRegistry() clients.Registry {
	return clients.NewMemoryRegistry([]models.Client{
		{ID: "foo", Secret: "bar", Scopes: []string{"read"}, GrantTypes: []string{models.GrantTypeCustom}},
		{ID: "colons", Secret: "a:b", Scopes: []string{"read"}, GrantTypes: []string{models.GrantTypeCustom}},
	})
}

func testUserAuth() *models.UserAuthentication {
	return &models.UserAuthentication{Username: "13800000000", Authenticated: true}
}

func newTestIssuer(t *testing.T) (*Issuer, *storage.MemoryTokenStore) {
	t.Helper()
	store := storage.NewMemoryTokenStore()
	issuer := NewIssuer(testRegistry(), NewService(time.Hour, time.Hour*24), store, testLogger())
	return issuer, store
}

func TestIssueSuccess(t *testing.T) {
	issuer, store := newTestIssuer(t)

	tok, err := issuer.Issue(context.Background(), "Basic Zm9vOmJhcg==", testUserAuth())
	require.NoError(t, err)

	assert.Equal(t, []string{"read"}, tok.Scopes)
	assert.Equal(t, "bearer", tok.TokenType)

	// The binding must be committed before the token is released.
	auth, err := store.Lookup(context.Background(), tok.Value)
	require.NoError(t, err)
	require.NotNil(t, auth)
	assert.Equal(t, "13800000000", auth.User.Username)
	assert.Equal(t, "foo", auth.Request.ClientID)
	assert.Equal(t, models.GrantTypeCustom, auth.Request.GrantType)
}

func TestIssueSecretWithColons(t *testing.T) {
	issuer, _ := newTestIssuer(t)

	// base64("colons:a:b")
	tok, err := issuer.Issue(context.Background(), "Basic Y29sb25zOmE6Yg==", testUserAuth())
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Value)
}

func TestIssueFailuresWriteNothing(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "missing header",
			header:   "",
			wantKind: KindMissingClientHeader,
			wantMsg:  "请求头中无client信息",
		},
		{
			name:     "no colon",
			header:   "Basic Zm9vYmFy",
			wantKind: KindMalformedClientCredentials,
			wantMsg:  "Invalid basic authentication token",
		},
		{
			name:     "unknown client",
			header:   "Basic bm9wZTpiYXI=", // nope:bar
			wantKind: KindUnknownClient,
			wantMsg:  "clientId对应的配置信息不存在:nope",
		},
		{
			name:     "secret mismatch",
			header:   "Basic Zm9vOnd3dw==", // foo:www
			wantKind: KindClientSecretMismatch,
			wantMsg:  "clientSecret不匹配:foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer, store := newTestIssuer(t)

			tok, err := issuer.Issue(context.Background(), tt.header, testUserAuth())
			assert.Nil(t, tok)

			var issueErr *Error
			require.True(t, errors.As(err, &issueErr))
			assert.Equal(t, tt.wantKind, issueErr.Kind)
			assert.Equal(t, tt.wantMsg, issueErr.Message)

			assert.Zero(t, store.Len(), "no binding may be written on failure")
		})
	}
}

type failingStore struct{}

func (failingStore) Store(context.Context, *models.AccessToken, *models.OAuthAuthentication) error {
	return errors.New("store unavailable")
}

func (failingStore) Lookup(context.Context, string) (*models.OAuthAuthentication, error) {
	return nil, nil
}

func (failingStore) Remove(context.Context, string) error {
	return nil
}

func TestIssueStoreFailure(t *testing.T) {
	issuer := NewIssuer(testRegistry(), NewService(time.Hour, 0), failingStore{}, testLogger())

	tok, err := issuer.Issue(context.Background(), "Basic Zm9vOmJhcg==", testUserAuth())
	assert.Nil(t, tok)

	var issueErr *Error
	require.True(t, errors.As(err, &issueErr))
	assert.Equal(t, KindIssuanceFailed, issueErr.Kind)
}
