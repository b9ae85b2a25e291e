// Package access decides whether a request may read or mutate an idea. Both
// checks are pure functions of the idea and the supplied credential.
package access

import (
	"github.com/ideapulse/idea-feedback-backend/internal/auth"
	"github.com/ideapulse/idea-feedback-backend/internal/models"
)

// ReadDecision is the outcome of a read authorization check. The two failure
// modes are distinct so callers can prompt for a password instead of denying
// outright.
type ReadDecision int

const (
	ReadAllowed ReadDecision = iota
	ReadPasswordRequired
	ReadPasswordInvalid
)

// AuthorizeRead gates access to a single idea. Public ideas are always
// readable; private ideas need the idea's password.
func AuthorizeRead(idea *models.Idea, password string) ReadDecision {
	if !idea.IsPrivate {
		return ReadAllowed
	}
	if password == "" {
		return ReadPasswordRequired
	}
	if !auth.VerifyPassword(password, idea.Password) {
		return ReadPasswordInvalid
	}
	return ReadAllowed
}

// AuthorizeOwner reports whether the supplied creator token proves ownership.
// The token is the bearer secret itself, so this is an exact match; an empty
// token never matches.
func AuthorizeOwner(idea *models.Idea, token string) bool {
	return token != "" && token == idea.CreatorToken
}
