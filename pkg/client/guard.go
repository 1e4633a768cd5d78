package client

// Route describes the access requirements of a navigable view.
type Route struct {
	Path string
	// RequiresAuth gates the route behind a confirmed session.
	RequiresAuth bool
	// RequiredRole additionally restricts the route to one role.
	RequiredRole string
}

// Decision is the guard's verdict for a navigation attempt.
type Decision int

const (
	// Proceed allows the navigation.
	Proceed Decision = iota
	// Wait means the session probe has not resolved yet; re-evaluate once
	// the session is ready instead of redirecting.
	Wait
	// RedirectLogin sends the visitor to the login view.
	RedirectLogin
	// RedirectHome sends the visitor to the default view (role mismatch).
	RedirectHome
)

// Guard gates navigation on session state and role.
type Guard struct {
	session *Session
}

// NewGuard returns a Guard consulting the given session.
func NewGuard(session *Session) *Guard {
	return &Guard{session: session}
}

// Evaluate returns the decision for navigating to route. Public routes
// always proceed; protected routes wait for the session probe, then demand
// a confirmed session and, when set, the required role.
func (g *Guard) Evaluate(route Route) Decision {
	if !route.RequiresAuth && route.RequiredRole == "" {
		return Proceed
	}
	if !g.session.IsReady() {
		return Wait
	}
	if !g.session.IsAuthenticated() {
		return RedirectLogin
	}
	if route.RequiredRole != "" && g.session.Role() != route.RequiredRole {
		return RedirectHome
	}
	return Proceed
}
