package token

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

const basicPrefix = "Basic "

// ParseBasicHeader extracts client credentials from an Authorization header
// carrying the "Basic " scheme. The decoded payload is split at the first
// colon; the secret may itself contain colons.
func ParseBasicHeader(header string) (clientID, clientSecret string, err error) {
	if header == "" || !strings.HasPrefix(header, basicPrefix) {
		return "", "", &Error{Kind: KindMissingClientHeader, Message: "请求头中无client信息"}
	}

	encoded := header[len(basicPrefix):]
	decoded, decodeErr := base64.StdEncoding.DecodeString(encoded)
	if decodeErr != nil {
		// Tolerate unpadded input.
		decoded, decodeErr = base64.RawStdEncoding.DecodeString(encoded)
	}
	if decodeErr != nil || !utf8.Valid(decoded) {
		return "", "", &Error{Kind: KindMalformedClientCredentials, Message: "Failed to decode basic authentication token"}
	}

	id, secret, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", &Error{Kind: KindMalformedClientCredentials, Message: "Invalid basic authentication token"}
	}

	return id, secret, nil
}
