package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vigilia/contracts-api/internal/app"
)

// ctxUser extracts the identity injected by the Auth middleware. A missing
// user id means the middleware did not run (or the token predates the
// current claim set); fail fast before any service call.
func ctxUser(c echo.Context) (userID, email string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	return userID, email, nil
}

// loadSession fetches the user's session, falling back to a fresh one when
// none is stored. The sign-in event normally installs the session; the
// fallback makes every handler safe against a lost or expired one.
func loadSession(ctx context.Context, store app.Store, userID, email string) *app.Session {
	sess, err := store.Get(ctx, userID)
	if err != nil {
		return app.NewSession(userID, email)
	}
	return sess
}
