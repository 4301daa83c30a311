package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicHeader(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantID     string
		wantSecret string
		wantKind   Kind
		wantMsg    string
	}{
		{
			name:       "valid credentials",
			header:     "Basic Zm9vOmJhcg==",
			wantID:     "foo",
			wantSecret: "bar",
		},
		{
			name:       "secret containing colons",
			header:     "Basic Zm9vOmE6Yg==",
			wantID:     "foo",
			wantSecret: "a:b",
		},
		{
			name:       "unpadded base64",
			header:     "Basic Zm9vOmJhcg",
			wantID:     "foo",
			wantSecret: "bar",
		},
		{
			name:     "missing header",
			header:   "",
			wantKind: KindMissingClientHeader,
			wantMsg:  "请求头中无client信息",
		},
		{
			name:     "bearer scheme",
			header:   "Bearer sometoken",
			wantKind: KindMissingClientHeader,
			wantMsg:  "请求头中无client信息",
		},
		{
			name:     "lowercase prefix",
			header:   "basic Zm9vOmJhcg==",
			wantKind: KindMissingClientHeader,
			wantMsg:  "请求头中无client信息",
		},
		{
			name:     "not base64",
			header:   "Basic !!!notbase64!!!",
			wantKind: KindMalformedClientCredentials,
			wantMsg:  "Failed to decode basic authentication token",
		},
		{
			name:     "invalid utf8 payload",
			header:   "Basic /w==",
			wantKind: KindMalformedClientCredentials,
			wantMsg:  "Failed to decode basic authentication token",
		},
		{
			name:     "no colon separator",
			header:   "Basic Zm9vYmFy",
			wantKind: KindMalformedClientCredentials,
			wantMsg:  "Invalid basic authentication token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, secret, err := ParseBasicHeader(tt.header)
			if tt.wantMsg != "" {
				var issueErr *Error
				require.True(t, errors.As(err, &issueErr))
				assert.Equal(t, tt.wantKind, issueErr.Kind)
				assert.Equal(t, tt.wantMsg, issueErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantSecret, secret)
		})
	}
}
