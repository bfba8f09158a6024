package middleware

import (
	"net/http"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/internal/usecase"
	"webuild-dashboard/pkg/utils"

	"go.uber.org/zap"
)

// Authorize is the access-control decision for a single request. It is pure:
// the same session state and role set always yield the same verdict, and it
// is re-evaluated on every protected request because role and verification
// state can change between requests.
func Authorize(sess *entity.Session, requireVerified bool, required ...entity.Role) error {
	if sess == nil {
		return usecase.ErrUnauthenticated
	}
	if requireVerified && !sess.EmailVerified {
		return usecase.ErrUnverified
	}
	if len(required) > 0 {
		if !sess.EmailVerified {
			return usecase.ErrUnverified
		}
		if !sess.Role.In(required) {
			return usecase.ErrForbidden
		}
	}
	return nil
}

// RequireAuth resolves the session cookie against the session store and puts
// the snapshot on the request context. Requests without a live session are
// rejected with 401.
func RequireAuth(sessionRepo repository.SessionRepository, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), cookie.Value)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// Expired or revoked sessions read as absent.
			if err := Authorize(session, false); err != nil {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			ctx := utils.SetSessionContext(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireVerified rejects sessions whose snapshot has not completed email
// verification. Must run after RequireAuth.
func RequireVerified(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRoles(logger)
}

// RequireRoles gates a route on the session's role. With no roles given it
// only enforces email verification. Must run after RequireAuth.
func RequireRoles(logger *zap.Logger, roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := utils.GetSessionFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			switch err := Authorize(sess, true, roles...); err {
			case nil:
				next.ServeHTTP(w, r)
			case usecase.ErrUnverified:
				logger.Warn("Unverified access attempt",
					zap.String("user_id", sess.UserID.String()),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Please verify your email before accessing this resource")
			case usecase.ErrForbidden:
				logger.Warn("Role denied",
					zap.String("user_id", sess.UserID.String()),
					zap.String("role", string(sess.Role)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Insufficient permissions")
			default:
				utils.ResponseUnauthorized(w, "Authentication required")
			}
		})
	}
}
