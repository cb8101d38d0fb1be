package httpapi

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/riskibarqy/thursday-league/internal/platform/logging"
	"github.com/riskibarqy/thursday-league/internal/platform/metrics"
)

// NewRouter wires routes and middleware. A nil metrics registry disables
// /metrics and request instrumentation.
func NewRouter(
	handler *Handler,
	sessions *scs.SessionManager,
	registry *metrics.Registry,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	requestTimeout time.Duration,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, registry)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, sessions)

	var routed http.Handler = mux
	if registry != nil {
		routed = registry.Instrument(mux)
	}

	return RequestTracing(
		RequestLogging(logger,
			CORS(corsAllowedOrigins,
				recoverPanic(logger,
					RequestDeadline(requestTimeout,
						sessions.LoadAndSave(routed),
					),
				),
			),
		),
	)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
