package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/harentsoaR/doctors-portal/internal/repository"
	"github.com/harentsoaR/doctors-portal/internal/utils"
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrNotAdmin          = errors.New("caller is not an admin")
	ErrForbidden         = errors.New("identity mismatch")
	ErrUnknownUser       = errors.New("unknown user")
)

// Identity is what a verified credential asserts about its bearer.
type Identity struct {
	Email string
}

// AccessGate verifies bearer credentials and checks the admin role against
// the user registry on every call.
type AccessGate struct {
	users  repository.UserRepository
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewAccessGate(users repository.UserRepository, secret string, ttl time.Duration) *AccessGate {
	return &AccessGate{users: users, secret: secret, ttl: ttl, now: time.Now}
}

// WithClock replaces the gate's time source.
func (g *AccessGate) WithClock(now func() time.Time) *AccessGate {
	g.now = now
	return g
}

// Authenticate verifies the credential carried in an Authorization header
// of the form "Bearer <token>".
func (g *AccessGate) Authenticate(header string) (Identity, error) {
	if header == "" {
		return Identity{}, ErrMissingCredential
	}
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return Identity{}, ErrInvalidCredential
	}
	claims, err := utils.ValidateJWT(parts[1], g.secret, g.now())
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return Identity{Email: claims.Email}, nil
}

// AuthorizeAdmin trusts identity as already authenticated.
func (g *AccessGate) AuthorizeAdmin(ctx context.Context, identity Identity) error {
	user, err := g.users.FindByEmail(ctx, identity.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotAdmin
	}
	if err != nil {
		return fmt.Errorf("look up %s: %w", identity.Email, err)
	}
	if !user.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}

// IssueCredential signs a token for a registered email.
func (g *AccessGate) IssueCredential(ctx context.Context, email string) (string, error) {
	if _, err := g.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUnknownUser
		}
		return "", fmt.Errorf("look up %s: %w", email, err)
	}
	return utils.GenerateJWT(email, g.secret, g.now(), g.ttl)
}

// IsAdmin reports the registry role for email; unknown emails are not admins.
func (g *AccessGate) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := g.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}
