package todo

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tasklight/tasklight/internal/platform/httpx"
	"github.com/tasklight/tasklight/internal/shared"
)

// Handler wires the owner-scoped todo endpoints. All routes are mounted
// behind the auth middleware, so the identity is always in context.
type Handler struct {
	logger *slog.Logger
	repo   *Repository
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, repo *Repository) *Handler {
	return &Handler{logger: logger, repo: repo}
}

// MountRoutes registers todo routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
}

type createRequest struct {
	Text string `json:"text"`
}

type updateRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrTokenMissing)
		return
	}

	todos, err := h.repo.List(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("list todos", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.Success(w, http.StatusOK, map[string]any{"todos": todos})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrTokenMissing)
		return
	}

	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.repo.Add(r.Context(), identity.UserID, req.Text)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.Success(w, http.StatusCreated, map[string]any{"todo": created})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrTokenMissing)
		return
	}

	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}

	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := h.repo.Update(r.Context(), identity.UserID, id, Patch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.Success(w, http.StatusOK, map[string]any{"todo": updated})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrTokenMissing)
		return
	}

	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}

	if err := h.repo.Remove(r.Context(), identity.UserID, id); err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.Success(w, http.StatusOK, map[string]any{"message": "todo deleted"})
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
