package authn

import (
	"context"
	"errors"
	"net/http"
	"time"

	"workwise/internal/apperr"
	"workwise/internal/client/apiclient"
	"workwise/internal/domain/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code,omitempty"`
}

type loginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      auth.Identity `json:"user"`
}

// HTTPVerifier checks credentials against the backend identity service.
// Its client should carry no Notifier or OnUnauthorized hook; login
// failures are reported by the Authenticator.
type HTTPVerifier struct {
	Client *apiclient.Client
}

func (v HTTPVerifier) Verify(ctx context.Context, cred Credential) (auth.Identity, string, error) {
	var out loginResponse
	err := v.Client.Do(ctx, http.MethodPost, "/auth/login", loginRequest{
		Username: cred.Username,
		Password: cred.Password,
		Code:     cred.OTP,
	}, &out)
	if err != nil {
		if apperr.IsValidation(err) {
			return auth.Identity{}, "", errors.Join(apperr.ErrInvalidInput, err)
		}
		return auth.Identity{}, "", err
	}
	if out.Token == "" || out.User.SubjectID == "" || !out.User.Role.Valid() {
		return auth.Identity{}, "", errors.New("login response missing token or user")
	}
	return out.User, out.Token, nil
}

func (v HTTPVerifier) Revoke(ctx context.Context, token string) error {
	return v.Client.Do(ctx, http.MethodPost, "/auth/logout", nil, nil, apiclient.WithBearer(token))
}
