package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shortlink/internal/analytics"
	"shortlink/internal/domain"
	"shortlink/internal/metrics"
	"shortlink/internal/service"
	"shortlink/internal/validation"
)

var (
	errInvalidBody        = map[string]string{"error": "Invalid request body"}
	errInvalidID          = map[string]string{"error": "Invalid ID"}
	errActiveRequired     = map[string]string{"error": "active is required"}
	errURLNotFound        = map[string]string{"error": "URL not found"}
	errSlugInUse          = map[string]string{"error": "Slug already in use"}
	errLinkInactive       = map[string]string{"error": "This link is no longer active"}
	errLinkExpired        = map[string]string{"error": "This link has expired"}
	errListFailed         = map[string]string{"error": "Failed to fetch URLs"}
	errCreateFailed       = map[string]string{"error": "Failed to create shortened URL"}
	errGetFailed          = map[string]string{"error": "Failed to fetch URL"}
	errUpdateFailed       = map[string]string{"error": "Failed to update URL"}
	errDeleteFailed       = map[string]string{"error": "Failed to delete URL"}
	errRedirectFailed     = map[string]string{"error": "Failed to process redirect"}
	errAnalyticsFailed    = map[string]string{"error": "Failed to fetch analytics"}
	errURLAnalyticsFailed = map[string]string{"error": "Failed to fetch URL analytics"}
	respHealthOK          = map[string]string{"status": "ok"}
)

type Handler struct {
	links     LinkService
	analytics AnalyticsService
	validator LinkValidator
	logger    *slog.Logger
	recorder  BusinessRecorder
}

func New(
	links LinkService,
	analytics AnalyticsService,
	validator LinkValidator,
	logger *slog.Logger,
	recorder BusinessRecorder,
) *Handler {
	return &Handler{
		links:     links,
		analytics: analytics,
		validator: validator,
		logger:    logger,
		recorder:  recorder,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/urls", h.ListURLs)
	api.POST("/urls", h.CreateURL)
	api.GET("/urls/:slug", h.GetURL)
	api.PATCH("/urls/:id", h.UpdateURL)
	api.DELETE("/urls/:id", h.DeleteURL)
	api.GET("/r/:slug", h.Redirect)
	api.GET("/analytics", h.Summary)
	api.GET("/analytics/:id", h.URLAnalytics)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) ListURLs(c echo.Context) error {
	links, err := h.links.ListLinks(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list links", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errListFailed)
	}
	return c.JSON(http.StatusOK, links)
}

func (h *Handler) CreateURL(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind request", slog.String("error", err.Error()))
		return invalidURLData(c, bindErrorDetails(err))
	}

	in, err := h.validator.ValidateCreate(req)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	link, err := h.links.CreateLink(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrSlugConflict) {
			return c.JSON(http.StatusConflict, errSlugInUse)
		}
		h.logger.Error("failed to create link", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	return c.JSON(http.StatusCreated, link)
}

func (h *Handler) GetURL(c echo.Context) error {
	link, err := h.links.GetLinkBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			return c.JSON(http.StatusNotFound, errURLNotFound)
		}
		h.logger.Error("failed to get link", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}
	return c.JSON(http.StatusOK, link)
}

func (h *Handler) UpdateURL(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errInvalidID)
	}

	var req domain.UpdateLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if req.Active == nil {
		return c.JSON(http.StatusBadRequest, errActiveRequired)
	}

	link, err := h.links.SetActive(c.Request().Context(), id, *req.Active)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			return c.JSON(http.StatusNotFound, errURLNotFound)
		}
		h.logger.Error("failed to update link", slog.Int64("id", id), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errUpdateFailed)
	}
	return c.JSON(http.StatusOK, link)
}

func (h *Handler) DeleteURL(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errInvalidID)
	}

	if err := h.links.DeleteLink(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			return c.JSON(http.StatusNotFound, errURLNotFound)
		}
		h.logger.Error("failed to delete link", slog.Int64("id", id), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errDeleteFailed)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Redirect(c echo.Context) error {
	req := c.Request()
	visit := domain.Visit{
		Referrer:  req.Referer(),
		UserAgent: req.UserAgent(),
	}

	link, event, err := h.links.Visit(req.Context(), c.Param("slug"), visit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			h.recorder.RecordEvent(metrics.EventLinkNotFound)
			return c.JSON(http.StatusNotFound, errURLNotFound)
		case errors.Is(err, service.ErrLinkInactive):
			h.recorder.RecordEvent(metrics.EventLinkGone)
			return c.JSON(http.StatusGone, errLinkInactive)
		case errors.Is(err, service.ErrLinkExpired):
			h.recorder.RecordEvent(metrics.EventLinkGone)
			return c.JSON(http.StatusGone, errLinkExpired)
		}
		h.logger.Error("failed to process redirect", slog.String("slug", c.Param("slug")), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errRedirectFailed)
	}

	h.recorder.RecordEvent(metrics.EventRedirect)
	h.recorder.RecordClick(event.Device, analytics.NormalizeReferrer(event.Referrer))

	return c.Redirect(http.StatusFound, link.OriginalURL)
}

func (h *Handler) Summary(c echo.Context) error {
	summary, err := h.analytics.Summarize(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to summarize analytics", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errAnalyticsFailed)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) URLAnalytics(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errInvalidID)
	}

	detail, err := h.analytics.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, analytics.ErrLinkNotFound) {
			return c.JSON(http.StatusNotFound, errURLNotFound)
		}
		h.logger.Error("failed to get link analytics", slog.Int64("id", id), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errURLAnalyticsFailed)
	}
	return c.JSON(http.StatusOK, detail)
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var reqErr *validation.RequestError
	if errors.As(err, &reqErr) {
		return invalidURLData(c, reqErr.Details())
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func invalidURLData(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"error":   "Invalid URL data",
		"details": details,
	})
}

// bindErrorDetails names the offending field when the body has a value of
// the wrong JSON type.
func bindErrorDetails(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{typeErr.Field: "must be a " + typeErr.Type.String()}
	}
	return map[string]string{"body": "request body must be a JSON object"}
}
