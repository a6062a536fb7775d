package auth

// Outcome is the result of checking a role against a protected target.
type Outcome int

const (
	Render Outcome = iota
	RedirectLogin
	RedirectForbidden
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectForbidden:
		return "redirect-forbidden"
	}
	return "unknown"
}

// Decision is the outcome plus where to go instead of rendering.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Decide is the access rule shared by the console guard and the API. An
// empty allowed set admits any authenticated role. Forbidden users go to
// their own landing page.
func Decide(role Role, authenticated bool, allowed []Role) Decision {
	if !authenticated || !role.Valid() {
		return Decision{Outcome: RedirectLogin, Target: EntryPage}
	}
	if len(allowed) > 0 && !RoleIn(role, allowed) {
		return Decision{Outcome: RedirectForbidden, Target: LandingPage(role)}
	}
	return Decision{Outcome: Render}
}
