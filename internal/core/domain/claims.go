package domain

// Claims is the decoded payload of an identity token. The caller supplies an
// arbitrary identity object at issue time; only the email claim is
// interpreted by this system.
type Claims map[string]any

// Email returns the email claim, or "" when absent.
func (c Claims) Email() string {
	email, _ := c["email"].(string)
	return email
}
