package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/siinmedia/jastiphemat/models"
	"github.com/siinmedia/jastiphemat/repository"
	"github.com/siinmedia/jastiphemat/utils"
)

// SessionState is the admin gate: a request is either signed in or not.
type SessionState int

const (
	Unauthenticated SessionState = iota
	Authenticated
)

func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

type Session struct {
	State     SessionState `json:"-"`
	AdminID   uuid.UUID    `json:"admin_id"`
	Email     string       `json:"email"`
	TokenID   string       `json:"-"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func (s Session) Authenticated() bool {
	return s.State == Authenticated
}

var anonymous = Session{State: Unauthenticated}

// AuthService owns the transitions between the two session states.
// Unauthenticated -> Authenticated happens on SignIn only; Authenticated ->
// Unauthenticated on SignOut, token expiry, or revocation elsewhere, which
// the next Probe observes.
type AuthService struct {
	admins  repository.AdminRepository
	revoked RevocationStore
	secret  string
	ttl     time.Duration
}

func NewAuthService(admins repository.AdminRepository, revoked RevocationStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{admins: admins, revoked: revoked, secret: secret, ttl: ttl}
}

func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", anonymous, ErrInvalidCredentials
		}
		return "", anonymous, fmt.Errorf("find admin: %w", err)
	}
	if !utils.CheckPasswordHash(password, admin.Password) {
		return "", anonymous, ErrInvalidCredentials
	}

	token, claims, err := utils.GenerateToken(s.secret, admin.ID.String(), admin.Email, s.ttl)
	if err != nil {
		return "", anonymous, fmt.Errorf("generate token: %w", err)
	}

	if err := s.admins.TouchLastLogin(ctx, admin.ID, time.Now()); err != nil {
		log.Printf("[AUTH] failed to update last login for %s: %v", admin.Email, err)
	}

	return token, Session{
		State:     Authenticated,
		AdminID:   admin.ID,
		Email:     admin.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Probe resolves the session a token stands for. Anything it cannot verify,
// including a token of a deleted admin, is treated as signed out.
func (s *AuthService) Probe(ctx context.Context, token string) Session {
	if token == "" {
		return anonymous
	}
	claims, err := utils.ParseToken(s.secret, token)
	if err != nil {
		return anonymous
	}
	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return anonymous
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		log.Printf("[AUTH] revocation check failed: %v", err)
		return anonymous
	}
	if revoked {
		return anonymous
	}
	if _, err := s.admins.FindByID(ctx, adminID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("[AUTH] admin lookup failed: %v", err)
		}
		return anonymous
	}
	return Session{
		State:     Authenticated,
		AdminID:   adminID,
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}

// SignOut revokes the token. An already invalid token is not an error.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(s.secret, token)
	if err != nil {
		return nil
	}
	return s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *AuthService) Me(ctx context.Context, session Session) (*models.Admin, error) {
	if !session.Authenticated() {
		return nil, ErrInvalidCredentials
	}
	admin, err := s.admins.FindByID(ctx, session.AdminID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return admin, err
}

// EnsureAdmin creates the configured admin account when it is missing.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, invalid("admin", "email and password are required")
	}
	_, err := s.admins.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	admin := &models.Admin{Email: email, Password: password, Name: "Admin"}
	if err := s.admins.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
