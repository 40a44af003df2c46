package entities

import "strings"

const (
	HomePath      = "/"
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// RouteAction is what the guard decides for a navigation request.
type RouteAction int

const (
	RouteAllow RouteAction = iota
	RouteRedirect
)

// RouteDecision is the outcome of EvaluateRoute. Location is set for redirects.
type RouteDecision struct {
	Action   RouteAction
	Location string
}

// Redirects reports whether the decision sends the client elsewhere.
func (it RouteDecision) Redirects() bool {
	return it.Action == RouteRedirect
}

// IsPublicPath reports whether path is reachable without a session.
func IsPublicPath(path string) bool {
	return path == HomePath || path == LoginPath
}

// IsGuardedPath reports whether navigation to path goes through the guard:
// the home page, the login page and the dashboard subtree.
func IsGuardedPath(path string) bool {
	if IsPublicPath(path) {
		return true
	}
	return path == DashboardPath || strings.HasPrefix(path, DashboardPath+"/")
}

// EvaluateRoute decides whether a client holding (or not) a token may open path.
//
//   - /login with a token redirects to the dashboard.
//   - Other public paths are always allowed.
//   - Protected paths redirect to /login without a token and are allowed with one.
func EvaluateRoute(path string, tokenPresent bool) RouteDecision {
	if IsPublicPath(path) {
		if path == LoginPath && tokenPresent {
			return RouteDecision{Action: RouteRedirect, Location: DashboardPath}
		}
		return RouteDecision{Action: RouteAllow}
	}

	if !tokenPresent {
		return RouteDecision{Action: RouteRedirect, Location: LoginPath}
	}
	return RouteDecision{Action: RouteAllow}
}
