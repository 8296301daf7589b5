package session

import "carmarket/pkg/domain"

// Session is the ephemeral per-user state of an in-progress intake flow:
// the current step plus the fields collected so far. It exists only between
// an explicit start and completion or cancellation.
type Session struct {
	Step  string       `json:"step"`
	Draft domain.Draft `json:"draft"`
}

// Store persists intake sessions keyed by user id. Different users' sessions
// are fully independent.
type Store interface {
	Get(userID int64) (Session, bool, error)
	Put(userID int64, s Session) error
	Delete(userID int64) error
}
