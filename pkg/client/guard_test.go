package client

import "testing"

func readySession(authenticated bool, role string) *Session {
	s := NewSession()
	s.state = StateReady
	s.authenticated = authenticated
	if authenticated {
		s.user = &User{ID: "u-1", Email: "a@x.com", Role: role}
	}
	return s
}

func TestGuard_PublicRoute(t *testing.T) {
	g := NewGuard(NewSession())
	if d := g.Evaluate(Route{Path: "/login"}); d != Proceed {
		t.Fatalf("public route: expected Proceed, got %v", d)
	}
}

func TestGuard_WaitsForProbe(t *testing.T) {
	// An unresolved session must never trigger a redirect: that is the
	// flash-redirect bug the Ready state exists to prevent.
	for _, s := range []*Session{NewSession(), {state: StateLoading}} {
		g := NewGuard(s)
		if d := g.Evaluate(Route{Path: "/booking", RequiresAuth: true}); d != Wait {
			t.Fatalf("unresolved session: expected Wait, got %v", d)
		}
	}
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	g := NewGuard(readySession(false, ""))
	if d := g.Evaluate(Route{Path: "/booking", RequiresAuth: true}); d != RedirectLogin {
		t.Fatalf("expected RedirectLogin, got %v", d)
	}
}

func TestGuard_AuthenticatedProceeds(t *testing.T) {
	g := NewGuard(readySession(true, "user"))
	if d := g.Evaluate(Route{Path: "/booking", RequiresAuth: true}); d != Proceed {
		t.Fatalf("expected Proceed, got %v", d)
	}
}

func TestGuard_RoleMismatchRedirectsHome(t *testing.T) {
	g := NewGuard(readySession(true, "user"))
	route := Route{Path: "/admin", RequiresAuth: true, RequiredRole: "admin"}
	if d := g.Evaluate(route); d != RedirectHome {
		t.Fatalf("expected RedirectHome, got %v", d)
	}
}

func TestGuard_RoleMatchProceeds(t *testing.T) {
	g := NewGuard(readySession(true, "admin"))
	route := Route{Path: "/admin", RequiresAuth: true, RequiredRole: "admin"}
	if d := g.Evaluate(route); d != Proceed {
		t.Fatalf("expected Proceed, got %v", d)
	}
}
