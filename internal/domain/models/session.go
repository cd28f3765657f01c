package model

import "time"

type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	// Fresh is set when the session was created or extended during this request.
	Fresh bool `json:"-"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type AuthContext struct {
	User    *User
	Session *Session
}
