package httpapi

import "context"

type contextKey string

const adminContextKey contextKey = "admin_username"

// adminSessionKey holds the logged-in admin username in the session store.
const adminSessionKey = "admin_username"

func withAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminContextKey, username)
}

func adminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminContextKey).(string)
	return username, ok && username != ""
}
