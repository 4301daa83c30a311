package token

// Kind discriminates issuance failures so the HTTP layer can map each one
// to a status code and an OAuth error code.
type Kind int

const (
	// KindMissingClientHeader: no Authorization header, or one without the
	// "Basic " prefix.
	KindMissingClientHeader Kind = iota

	// KindMalformedClientCredentials: the Basic payload could not be decoded
	// or did not contain a colon separator.
	KindMalformedClientCredentials

	// KindUnknownClient: the registry has no client for the presented id.
	KindUnknownClient

	// KindClientSecretMismatch: the presented secret does not match.
	KindClientSecretMismatch

	// KindIssuanceFailed: the token service or token store failed.
	KindIssuanceFailed
)

// Error is a typed issuance failure.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}
