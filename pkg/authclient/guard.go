package authclient

import "webuild-dashboard/internal/data/entity"

// Decision is what a UI should do with a guarded route.
type Decision int

const (
	// Pending means the session state is still unknown. Render nothing
	// rather than flashing a redirect.
	Pending Decision = iota
	Allow
	RedirectLogin
	RedirectVerify
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectVerify:
		return "redirect-verify"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	}
	return "unknown"
}

// Guard evaluates the cached session against a route's requirements. An empty
// roles list admits every role.
func (c *Client) Guard(requireVerified bool, roles ...entity.Role) Decision {
	sess, loaded := c.Session()
	return Evaluate(sess, loaded, requireVerified, roles...)
}

// Evaluate is the pure form of Guard for callers that manage their own
// session state.
func Evaluate(sess *Session, loaded, requireVerified bool, roles ...entity.Role) Decision {
	if !loaded {
		return Pending
	}
	if sess == nil {
		return RedirectLogin
	}
	if requireVerified && !sess.EmailVerified {
		return RedirectVerify
	}
	if len(roles) == 0 {
		return Allow
	}
	if sess.Role.In(roles) {
		return Allow
	}
	return RedirectUnauthorized
}
