package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"undercity/internal/app/feed"
	"undercity/internal/app/history"
	"undercity/internal/app/ports"
	"undercity/internal/app/resolve"
	"undercity/internal/app/status"
	"undercity/internal/domain/crime"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ResolveUC resolve.UseCase
	StatusUC  status.UseCase
	HistoryUC history.UseCase
	FeedUC    feed.UseCase
	Catalog   *crime.Catalog
	KPI       kpiSnapshotProvider

	// Per-request budget for resolution; zero means no deadline.
	ResolveTimeout time.Duration
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/crime/resolve", h.resolveCrime)
	api.GET("/crime/catalog", h.crimeCatalog)
	api.GET("/crime/history", h.crimeHistory)
	api.GET("/character/status", h.characterStatus)
	api.GET("/feed", h.eventFeed)

	s.GET("/ops/kpi", h.kpi)
}

type resolveRequest struct {
	CharacterID    string `json:"character_id"`
	CrimeID        string `json:"crime_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (h Handler) resolveCrime(c context.Context, ctx *app.RequestContext) {
	var body resolveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", nil)
		return
	}

	if h.ResolveTimeout > 0 {
		var cancel context.CancelFunc
		c, cancel = context.WithTimeout(c, h.ResolveTimeout)
		defer cancel()
	}

	resp, err := h.ResolveUC.Execute(c, resolve.Request{
		CharacterID:    body.CharacterID,
		CrimeID:        body.CrimeID,
		IdempotencyKey: body.IdempotencyKey,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

type catalogResponse struct {
	Crimes []crime.CrimeDefinition `json:"crimes"`
}

func (h Handler) crimeCatalog(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, catalogResponse{Crimes: h.Catalog.List()})
}

func (h Handler) characterStatus(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{
		CharacterID: string(ctx.Query("character_id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) crimeHistory(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.HistoryUC.Execute(c, history.Request{
		CharacterID: string(ctx.Query("character_id")),
		Limit:       limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) eventFeed(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.FeedUC.Execute(c, feed.Request{Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured", nil)
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, resolve.ErrCurrentlyJailed):
		var jailed *resolve.CurrentlyJailedError
		var details map[string]any
		if errors.As(err, &jailed) && jailed != nil {
			details = map[string]any{"release_at": jailed.ReleaseAt}
		}
		writeErrorBody(ctx, consts.StatusConflict, "currently_jailed", err.Error(), details)
	case errors.Is(err, resolve.ErrInsufficientEnergy):
		var energy *resolve.InsufficientEnergyError
		var details map[string]any
		if errors.As(err, &energy) && energy != nil {
			details = map[string]any{
				"required":  energy.Required,
				"available": energy.Available,
			}
		}
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_energy", err.Error(), details)
	case errors.Is(err, crime.ErrUnknownCrime):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_crime", err.Error(), nil)
	case errors.Is(err, resolve.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error(), nil)
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error(), nil)
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string, details map[string]any) {
	body := map[string]any{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	ctx.JSON(status, map[string]any{"error": body})
}
