package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/rs/zerolog"

	"workwise/internal/apperr"
	"workwise/internal/platform/crypto"
)

const (
	DefaultTokenTTL = 8 * time.Hour
	mfaIssuer       = "Workwise"
)

type Service struct {
	Store       StoreAPI
	Revocations RevocationStore
	Sealer      *crypto.Sealer
	Secret      string
	TokenTTL    time.Duration
}

func NewService(store StoreAPI, revocations RevocationStore, sealer *crypto.Sealer, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if revocations == nil {
		revocations = NewMemoryRevocations()
	}
	return &Service{Store: store, Revocations: revocations, Sealer: sealer, Secret: secret, TokenTTL: ttl}
}

// Verify checks a username/password pair (and a TOTP code for accounts with
// MFA enabled) and returns the identity behind it.
func (s *Service) Verify(ctx context.Context, username, password, code string) (Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Identity{}, apperr.ErrInvalidInput
	}

	user, err := s.Store.FindActiveUserByUsername(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		return Identity{}, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return Identity{}, fmt.Errorf("%w: user lookup: %v", apperr.ErrServiceUnavailable, err)
	}
	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return Identity{}, apperr.ErrInvalidCredentials
	}

	if user.MFAEnabled {
		if strings.TrimSpace(code) == "" {
			return Identity{}, apperr.ErrMFARequired
		}
		secret, err := s.Sealer.OpenString(user.MFASecretEnc)
		if err != nil || secret == "" {
			return Identity{}, apperr.ErrInvalidCredentials
		}
		if !totp.Validate(strings.TrimSpace(code), secret) {
			return Identity{}, apperr.ErrInvalidCredentials
		}
	}

	if err := s.Store.UpdateLastLogin(ctx, user.ID); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("userId", user.ID).Msg("update last_login failed")
	}

	return Identity{
		SubjectID:   user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		EmployeeID:  user.EmployeeID,
	}, nil
}

func (s *Service) IssueToken(id Identity) (string, time.Time, error) {
	expires := time.Now().Add(s.TokenTTL)
	token, err := GenerateToken(s.Secret, Claims{
		UserID:      id.SubjectID,
		Username:    id.Username,
		DisplayName: id.DisplayName,
		Role:        id.Role,
	}, s.TokenTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expires, nil
}

// Authenticate resolves a bearer token into the calling user. Expired,
// malformed and revoked tokens all yield ErrUnauthorized; a failing
// revocation store yields ErrServiceUnavailable.
func (s *Service) Authenticate(ctx context.Context, token string) (UserContext, error) {
	claims, err := ParseToken(s.Secret, token)
	if err != nil {
		return UserContext{}, apperr.ErrUnauthorized
	}
	revoked, err := s.Revocations.Revoked(ctx, claims.ID)
	if err != nil {
		return UserContext{}, fmt.Errorf("%w: revocation lookup: %v", apperr.ErrServiceUnavailable, err)
	}
	if revoked {
		return UserContext{}, apperr.ErrUnauthorized
	}
	user := UserContext{
		UserID:      claims.UserID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		Role:        claims.Role,
		TokenID:     claims.ID,
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Time
	}
	return user, nil
}

// Revoke invalidates the caller's token for the rest of its lifetime.
func (s *Service) Revoke(ctx context.Context, user UserContext) error {
	ttl := time.Until(user.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.Revocations.Revoke(ctx, user.TokenID, ttl)
}

func (s *Service) SetupMFA(ctx context.Context, user UserContext) (string, string, error) {
	if !s.Sealer.Configured() {
		return "", "", fmt.Errorf("%w: mfa requires an encryption key", apperr.ErrInvalidState)
	}
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      mfaIssuer,
		AccountName: user.Username,
		Period:      30,
		Digits:      otp.DigitsSix,
	})
	if err != nil {
		return "", "", err
	}
	sealed, err := s.Sealer.SealString(key.Secret())
	if err != nil {
		return "", "", err
	}
	if err := s.Store.UpdateMFASecret(ctx, user.UserID, sealed); err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

func (s *Service) EnableMFA(ctx context.Context, user UserContext, code string) error {
	stored, err := s.Store.GetUser(ctx, user.UserID)
	if err != nil {
		return err
	}
	if len(stored.MFASecretEnc) == 0 {
		return fmt.Errorf("%w: mfa setup required", apperr.ErrInvalidState)
	}
	secret, err := s.Sealer.OpenString(stored.MFASecretEnc)
	if err != nil {
		return fmt.Errorf("%w: invalid mfa secret", apperr.ErrInvalidState)
	}
	if !totp.Validate(strings.TrimSpace(code), secret) {
		verr := &apperr.ValidationError{}
		verr.Add("code", "invalid mfa code")
		return verr
	}
	return s.Store.SetMFAEnabled(ctx, user.UserID, true)
}

// EnsureUser creates the account if missing. Used by seeding.
func (s *Service) EnsureUser(ctx context.Context, username, password, displayName string, role Role, employeeID string) (string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	return s.Store.CreateUser(ctx, User{
		Username:     username,
		DisplayName:  displayName,
		Role:         role,
		EmployeeID:   employeeID,
		PasswordHash: hash,
		Status:       UserStatusActive,
	})
}
