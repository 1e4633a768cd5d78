package domain

import "time"

// AuthAction identifies the kind of authentication event being recorded.
type AuthAction string

const (
	ActionSignup      AuthAction = "signup"
	ActionLogin       AuthAction = "login"
	ActionLoginFailed AuthAction = "login_failed"
	ActionLogout      AuthAction = "logout"
)

// AuthEvent is an audit-trail entry for an authentication state change.
// Events are recorded asynchronously and never block the request path.
type AuthEvent struct {
	UserID    string     `bson:"user_id,omitempty"`
	Email     string     `bson:"email"`
	Action    AuthAction `bson:"action"`
	Timestamp time.Time  `bson:"timestamp"`
}
