package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/skillfolio/skillfolio/internal/auth"
	"github.com/skillfolio/skillfolio/internal/model"
	"github.com/skillfolio/skillfolio/internal/repository"
)

// UserSource resolves a token subject to a full user record.
// Implemented by *repository.Repository.
type UserSource interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

// UserCache is an optional read-through cache in front of UserSource.
// Implemented by *cache.Cache; nil disables caching.
type UserCache interface {
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger *slog.Logger
	Tokens *auth.TokenService
	Users  UserSource
	Cache  UserCache
}

// Auth returns a middleware that authenticates requests with a bearer
// session token. On success the resolved user profile is attached to the
// request context; every failure short-circuits with the same 401 body.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				logAuthFailure(cfg.Logger, r, "missing_token")
				writeAuthError(w)
				return
			}

			claims, err := cfg.Tokens.Verify(token)
			if err != nil {
				logAuthFailure(cfg.Logger, r, "invalid_token")
				writeAuthError(w)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				logAuthFailure(cfg.Logger, r, "invalid_subject")
				writeAuthError(w)
				return
			}

			user, cacheHit, err := resolveUser(r.Context(), cfg, userID)
			if err != nil {
				// A token whose subject no longer exists is treated the
				// same as a forged one.
				if errors.Is(err, repository.ErrUserNotFound) {
					logAuthFailure(cfg.Logger, r, "unknown_subject")
				} else {
					cfg.Logger.Error("database error during auth",
						slog.String("error", err.Error()),
						slog.String("request_id", GetRequestID(r.Context())),
					)
				}
				writeAuthError(w)
				return
			}

			cfg.Logger.Info("authentication successful",
				slog.Int64("user_id", user.ID),
				slog.String("endpoint", r.Method+" "+r.URL.Path),
				slog.Bool("cache_hit", cacheHit),
				slog.String("request_id", GetRequestID(r.Context())),
			)

			authCtx := &model.AuthContext{
				UserID:    user.ID,
				Email:     user.Email,
				FirstName: user.FirstName,
				LastName:  user.LastName,
			}

			ctx := auth.ContextWithAuth(r.Context(), authCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveUser loads the user for a verified subject id, consulting the
// cache first when one is configured.
func resolveUser(ctx context.Context, cfg AuthConfig, userID int64) (*model.User, bool, error) {
	if cfg.Cache != nil {
		if cached, _ := cfg.Cache.GetUser(ctx, userID); cached != nil {
			return cached, true, nil
		}
	}

	user, err := cfg.Users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	if cfg.Cache != nil {
		_ = cfg.Cache.SetUser(ctx, user)
	}

	return user, false, nil
}

// extractBearerToken pulls the token out of "Authorization: Bearer <token>".
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func logAuthFailure(logger *slog.Logger, r *http.Request, reason string) {
	logger.Warn("authentication failed",
		slog.String("reason", reason),
		slog.String("ip", r.RemoteAddr),
		slog.String("endpoint", r.Method+" "+r.URL.Path),
		slog.String("request_id", GetRequestID(r.Context())),
	)
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Invalid or missing token","code":"UNAUTHORIZED"}`))
}
