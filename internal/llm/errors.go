package llm

import "errors"

var (
	// ErrMissingCredential indicates the provider needs an API key and none
	// was supplied. It is reported before any network call is attempted.
	ErrMissingCredential = errors.New("API 키가 설정되지 않았습니다")

	// ErrUnknownProvider indicates the configured provider name is not supported.
	ErrUnknownProvider = errors.New("unknown llm provider")

	// ErrProviderUnavailable indicates the LLM endpoint is unreachable.
	ErrProviderUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the request context expired before a response arrived.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the provider answered without any text.
	ErrEmptyResponse = errors.New("llm returned an empty response")

	// ErrRequestFailed indicates the provider rejected or failed the request.
	ErrRequestFailed = errors.New("llm request failed")
)
