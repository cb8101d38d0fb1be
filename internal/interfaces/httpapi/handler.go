package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/alexedwards/scs/v2"
	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
	"github.com/riskibarqy/thursday-league/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

var requestJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

type Handler struct {
	registry           *roster.Registry
	windowService      *usecase.WindowService
	submissionService  *usecase.SubmissionService
	leaderboardService *usecase.LeaderboardService
	teamService        *usecase.TeamService
	adminService       *usecase.AdminService
	sessions           *scs.SessionManager
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	registry *roster.Registry,
	windowService *usecase.WindowService,
	submissionService *usecase.SubmissionService,
	leaderboardService *usecase.LeaderboardService,
	teamService *usecase.TeamService,
	adminService *usecase.AdminService,
	sessions *scs.SessionManager,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		registry:           registry,
		windowService:      windowService,
		submissionService:  submissionService,
		leaderboardService: leaderboardService,
		teamService:        teamService,
		adminService:       adminService,
		sessions:           sessions,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate reads a JSON body into payload and runs struct validation.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, payload any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := requestJSON.Unmarshal(body, payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logFailure logs unexpected errors at error level and client errors at warn.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}
