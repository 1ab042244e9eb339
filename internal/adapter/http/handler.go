package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	staticmaps "farmstead/internal/adapter/maps/static"
	"farmstead/internal/app/action"
	"farmstead/internal/app/maps"
	"farmstead/internal/app/observe"
	"farmstead/internal/app/ports"
	"farmstead/internal/app/replay"
	"farmstead/internal/app/setup"
	"farmstead/internal/app/status"
	"farmstead/internal/domain/farm"
	"farmstead/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	SetupUC     setup.UseCase
	StatusUC    status.UseCase
	ObserveUC   observe.UseCase
	ActionUC    action.UseCase
	ReplayUC    replay.UseCase
	MapsUC      maps.UseCase
	Catalog     *farm.Catalog
	ReplayLimit int
	KPI         kpiSnapshotProvider
	AllowOrigin string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowOrigin))

	api := s.Group("/api")
	api.POST("/farms", h.createFarm)
	api.GET("/farms/:farm_id", h.status)
	api.GET("/farms/:farm_id/observe", h.observe)
	api.POST("/farms/:farm_id/action", h.action)
	api.GET("/farms/:farm_id/replay", h.replay)
	api.GET("/catalog", h.catalog)
	api.GET("/maps", h.listMaps)
	api.GET("/maps/:name", h.getMap)

	s.GET("/ops/kpi", h.kpi)
}

type actionRequest struct {
	Intent actionIntent `json:"intent"`
}

type actionIntent struct {
	Type      string          `json:"type"`
	Direction string          `json:"direction,omitempty"`
	Pos       *world.Position `json:"pos,omitempty"`
	Item      string          `json:"item,omitempty"`
}

func (h Handler) createFarm(c context.Context, ctx *app.RequestContext) {
	var body setup.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.SetupUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{FarmID: ctx.Param("farm_id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c, observe.Request{FarmID: ctx.Param("farm_id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{
		FarmID: ctx.Param("farm_id"),
		Intent: action.Intent{
			Type:      action.ActionType(body.Intent.Type),
			Direction: body.Intent.Direction,
			Pos:       body.Intent.Pos,
			Item:      body.Intent.Item,
		},
	})
	if err != nil {
		if writeActionRejectedFromErr(ctx, err) {
			return
		}
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	if limit == 0 {
		limit = h.ReplayLimit
	}
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		FarmID:       ctx.Param("farm_id"),
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) catalog(_ context.Context, ctx *app.RequestContext) {
	c := h.Catalog
	if c == nil {
		c = farm.DefaultCatalog()
	}
	ctx.JSON(consts.StatusOK, c)
}

func (h Handler) listMaps(c context.Context, ctx *app.RequestContext) {
	names, err := h.MapsUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"maps": names})
}

func (h Handler) getMap(c context.Context, ctx *app.RequestContext) {
	info, err := h.MapsUC.Get(c, strings.TrimSpace(ctx.Param("name")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, info)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
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
	case errors.Is(err, action.ErrInvalidActionParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error())
	case errors.Is(err, setup.ErrInvalidMap),
		errors.Is(err, world.ErrEmptyMap),
		errors.Is(err, world.ErrRaggedMap),
		errors.Is(err, world.ErrUnknownCell):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_map", err.Error())
	case errors.Is(err, staticmaps.ErrInvalidMapPath):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_map_name", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, setup.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeActionRejectedFromErr(ctx *app.RequestContext, err error) bool {
	var rejected *action.ActionRejectedError
	switch {
	case errors.As(err, &rejected):
		writeActionRejected(ctx, consts.StatusConflict, rejected.Code(), err.Error(), map[string]any{
			"intent": string(rejected.Type),
		})
		return true
	case errors.Is(err, action.ErrInvalidActionParams):
		writeActionRejected(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error(), nil)
		return true
	case errors.Is(err, action.ErrInvalidRequest):
		writeActionRejected(ctx, consts.StatusBadRequest, "bad_request", err.Error(), nil)
		return true
	default:
		return false
	}
}

func writeActionRejected(ctx *app.RequestContext, status int, code, message string, details map[string]any) {
	ctx.JSON(status, map[string]any{
		"result_code": action.ResultRejected,
		"error": map[string]any{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
