package v1handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"flowtrack/internal/config"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/serrors"
)

// workspaceIDContextKey carries the authenticated workspace through the
// request context.
type workspaceIDContextKey struct{}

// SecHandlerOptions configure token verification and minting.
type SecHandlerOptions struct {
	// JWTSecret is the HMAC secret used to sign and verify workspace tokens.
	JWTSecret string
	// TokenTTL is how long minted tokens remain valid.
	TokenTTL time.Duration
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
	}
}

// workspaceClaims is the JWT claim set carried by workspace tokens.
type workspaceClaims struct {
	WorkspaceID string `json:"workspaceId"`
	jwt.RegisteredClaims
}

// SecHandler authenticates bearer tokens and scopes requests to a workspace.
type SecHandler struct {
	options *SecHandlerOptions
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	if options == nil || options.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}

	return &SecHandler{options: options}, nil
}

// Middleware verifies the Authorization bearer token and injects the token's
// workspace ID into the request context.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID, err := s.authenticate(r)
		if err != nil {
			writeError(w, r, err)

			return
		}

		ctx := context.WithValue(r.Context(), workspaceIDContextKey{}, workspaceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *SecHandler) authenticate(r *http.Request) (domain.WorkspaceID, error) {
	raw := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(raw, "Bearer ")
	if !found || token == "" {
		return domain.WorkspaceID{}, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	var claims workspaceClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}

		return []byte(s.options.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return domain.WorkspaceID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.WorkspaceID)
	if err != nil {
		return domain.WorkspaceID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid workspace claim")
	}

	return domain.WorkspaceID(id), nil
}

// MintToken issues a signed workspace token, used by the jwt CLI subcommand.
func (s *SecHandler) MintToken(workspaceID domain.WorkspaceID) (string, error) {
	now := time.Now()
	claims := workspaceClaims{
		WorkspaceID: uuid.UUID(workspaceID).String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.options.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.options.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return token, nil
}

// GetWorkspaceIDFromContext returns the authenticated workspace ID, or the
// zero value outside an authenticated request.
func GetWorkspaceIDFromContext(ctx context.Context) domain.WorkspaceID {
	id, _ := ctx.Value(workspaceIDContextKey{}).(domain.WorkspaceID)

	return id
}
