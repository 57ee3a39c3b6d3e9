package app

import "context"

// AnalyzeRequest is one user-triggered analyze action.
type AnalyzeRequest struct {
	Text       string
	Credential string
}

// AnalyzeUseCase runs an analysis and stores its result in the session.
type AnalyzeUseCase interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (Session, error)
}

// DetailToggleUseCase flips the detail-view visibility of a ready session.
type DetailToggleUseCase interface {
	ToggleDetail() (Session, error)
}

// SessionReader exposes a read-only copy of the current session.
type SessionReader interface {
	Snapshot() Session
}

// ResetUseCase clears the session back to Idle.
type ResetUseCase interface {
	Reset() Session
}

// SessionUseCase is the controller surface used by front-ends.
type SessionUseCase interface {
	AnalyzeUseCase
	DetailToggleUseCase
	ResetUseCase
	SessionReader
}

var _ SessionUseCase = (*SessionController)(nil)
