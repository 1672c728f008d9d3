package middleware

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gamefest/gamefest-api/internal/event"
	"github.com/gamefest/gamefest-api/internal/httputil"
)

const (
	sessionKeyAdminID       = "adminID"
	sessionKeyAdminUsername = "adminUsername"
)

// SignIn rotates the session token and binds the admin identity to it.
func SignIn(ctx context.Context, sessionManager *scs.SessionManager, admin *event.Admin) error {
	if err := sessionManager.RenewToken(ctx); err != nil {
		return err
	}
	sessionManager.Put(ctx, sessionKeyAdminID, admin.ID)
	sessionManager.Put(ctx, sessionKeyAdminUsername, admin.Username)
	return nil
}

// SignOut destroys the session. Destroying an already-empty session is fine.
func SignOut(ctx context.Context, sessionManager *scs.SessionManager) error {
	return sessionManager.Destroy(ctx)
}

func AdminIdentity(ctx context.Context, sessionManager *scs.SessionManager) (int64, string, bool) {
	id := sessionManager.GetInt64(ctx, sessionKeyAdminID)
	if id == 0 {
		return 0, "", false
	}
	return id, sessionManager.GetString(ctx, sessionKeyAdminUsername), true
}

// RequireAdmin rejects the request with a 401 unless the session carries an
// admin identity. Re-evaluated on every request from session state alone.
func RequireAdmin(sessionManager *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, _, ok := AdminIdentity(r.Context(), sessionManager); !ok {
				httputil.Unauthorized(w, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
