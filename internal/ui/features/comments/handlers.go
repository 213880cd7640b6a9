package comments

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goamaan/site/internal/auth"
	"github.com/goamaan/site/internal/query"
	"github.com/goamaan/site/internal/ui/features/comments/components"
	"github.com/goamaan/site/pkg/core"
	"github.com/starfederation/datastar-go/datastar"
)

// Handlers provides HTTP handlers for the comments feature.
type Handlers struct {
	client *query.Client
	store  core.Store
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(client *query.Client, store core.Store, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{client: client, store: store, logger: logger}
}

// threadKey reads the thread from the URL. It is not validated here: a
// malformed key is rejected by the store and shown in the error branch.
func threadKey(r *http.Request) core.EntityKey {
	return core.EntityKey{
		ID:   chi.URLParam(r, "id"),
		Type: core.EntityType(chi.URLParam(r, "type")),
	}
}

// ThreadSSE settles a thread and patches it over its loading placeholder.
func (h *Handlers) ThreadSSE(w http.ResponseWriter, r *http.Request) {
	key := threadKey(r)
	user := auth.FromContext(r.Context())

	sse := datastar.NewSSE(w, r)
	result := h.client.CommentsForType(r.Context(), key)
	if err := sse.PatchElementTempl(components.CommentList(key, user, result)); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// CreateSSE posts a comment as the signed-in user.
func (h *Handlers) CreateSSE(w http.ResponseWriter, r *http.Request) {
	user := auth.FromContext(r.Context())
	if user == nil {
		http.Error(w, "sign in to comment", http.StatusUnauthorized)
		return
	}
	key := threadKey(r)

	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals CreateSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.PatchElementTempl(components.FormError(key, "Failed to read signals: "+err.Error()))
		return
	}

	sse := datastar.NewSSE(w, r)

	text := strings.TrimSpace(signals.CommentText)
	if text == "" {
		_ = sse.PatchElementTempl(components.FormError(key, "Comment cannot be empty"))
		return
	}

	comment := &core.Comment{
		EntityID:   key.ID,
		EntityType: key.Type,
		Text:       text,
		Author:     core.Author{ID: user.ID, Name: user.Name, Image: user.Image},
	}
	if err := h.store.CreateComment(r.Context(), comment); err != nil {
		h.logger.Debug("create comment failed", slog.String("entity", key.String()), slog.String("error", err.Error()))
		_ = sse.PatchElementTempl(components.FormError(key, createErrorText(err)))
		return
	}

	h.logger.Info("comment created",
		slog.String("id", comment.ID),
		slog.String("entity", key.String()),
		slog.String("author", user.Name))

	result := h.client.CommentsForType(r.Context(), key)
	if err := sse.PatchElementTempl(components.CommentList(key, user, result)); err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.MarshalAndPatchSignals(map[string]any{components.TextSignal: ""}); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// DeleteSSE removes a comment. Only its author or an admin may do this.
func (h *Handlers) DeleteSSE(w http.ResponseWriter, r *http.Request) {
	user := auth.FromContext(r.Context())
	if user == nil {
		http.Error(w, "sign in required", http.StatusUnauthorized)
		return
	}
	key := threadKey(r)
	commentID := chi.URLParam(r, "commentID")

	comment, err := h.store.GetComment(r.Context(), commentID)
	switch {
	case errors.Is(err, core.ErrNotFound):
		http.Error(w, "comment not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	case comment.Key() != key:
		// the comment exists but belongs to another thread
		http.Error(w, "comment not found", http.StatusNotFound)
		return
	case !comment.CanDelete(user):
		http.Error(w, core.ErrForbidden.Error(), http.StatusForbidden)
		return
	}

	if err := h.store.DeleteComment(r.Context(), commentID); err != nil && !errors.Is(err, core.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.logger.Info("comment deleted",
		slog.String("id", commentID),
		slog.String("entity", key.String()),
		slog.String("by", user.Name))

	sse := datastar.NewSSE(w, r)
	result := h.client.CommentsForType(r.Context(), key)
	if err := sse.PatchElementTempl(components.CommentList(key, user, result)); err != nil {
		_ = sse.ConsoleError(err)
	}
}

func createErrorText(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyComment):
		return "Comment cannot be empty"
	case errors.Is(err, core.ErrEmptyEntityID), errors.Is(err, core.ErrInvalidEntityType):
		return "This thread does not accept comments"
	default:
		return "Could not post your comment, please try again"
	}
}
