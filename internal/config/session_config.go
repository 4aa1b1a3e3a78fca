package config

import "time"

type SessionConfig interface {
	GetSessionSecret() string
	GetSessionTTL() time.Duration
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionSecret() string {
	return GetEnv("SESSION_SECRET", "dev-only-session-secret")
}

func (Session) GetSessionTTL() time.Duration {
	return 12 * time.Hour // one working day, matching the web client
}
