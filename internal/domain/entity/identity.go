package entity

// Identity is what the identity provider tells us about the current user.
// The zero value is the anonymous identity.
type Identity struct {
	Subject       string
	Name          string
	Email         string
	Authenticated bool
}

// Anonymous is the identity used when no valid token was presented.
var Anonymous = Identity{}

// DisplayName prefers the human name and falls back to the subject.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.Email != "" {
		return i.Email
	}

	return i.Subject
}
