package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"primordia/internal/app/observe"
	"primordia/internal/app/ports"
	"primordia/internal/app/replay"
	"primordia/internal/app/setup"
	"primordia/internal/app/shared/wire"
	"primordia/internal/app/trait"
)

type Handler struct {
	SetupUC   setup.UseCase
	ObserveUC observe.UseCase
	ReplayUC  replay.UseCase
	Gateway   ports.ActionGateway
	KPI       func() any
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	s.GET("/healthz", h.health)

	api := s.Group("/api")
	api.POST("/rooms", h.createRoom)
	api.POST("/rooms/:id/join", h.joinRoom)
	api.POST("/games", h.createGame)
	api.GET("/games/:id", h.gameView)
	api.POST("/games/:id/actions", h.submitAction)
	api.GET("/games/:id/replay", h.gameReplay)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) health(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) createRoom(c context.Context, ctx *app.RequestContext) {
	room, err := h.SetupUC.CreateRoom(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"roomId": room.RoomID})
}

type joinRoomRequest struct {
	UserID    string `json:"userId"`
	Spectator bool   `json:"spectator,omitempty"`
}

func (h Handler) joinRoom(c context.Context, ctx *app.RequestContext) {
	var body joinRoomRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	room, err := h.SetupUC.JoinRoom(c, ctx.Param("id"), body.UserID, body.Spectator)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"roomId":     room.RoomID,
		"users":      room.Users,
		"spectators": room.Spectators,
	})
}

type createGameRequest struct {
	RoomID string `json:"roomId"`
}

func (h Handler) createGame(c context.Context, ctx *app.RequestContext) {
	var body createGameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	game, err := h.SetupUC.CreateGame(c, body.RoomID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, game)
}

func (h Handler) gameView(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c, observe.Request{
		UserID: ctx.Query("userId"),
		GameID: ctx.Param("id"),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type submitActionRequest struct {
	UserID string      `json:"userId"`
	Action wire.Action `json:"action"`
}

func (h Handler) submitAction(c context.Context, ctx *app.RequestContext) {
	var body submitActionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	outcome, err := h.Gateway.Submit(c, body.UserID, body.Action)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, outcome)
}

func (h Handler) gameReplay(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ReplayUC.Execute(c, replay.Request{GameID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) kpi(c context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		ctx.JSON(consts.StatusOK, map[string]any{})
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	return json.Unmarshal(ctx.Request.Body(), out)
}

func writeError(ctx *app.RequestContext, err error) {
	var checkErr *trait.ActionCheckError
	if errors.As(err, &checkErr) {
		writeCheckError(ctx, checkErr)
		return
	}
	switch {
	case errors.Is(err, trait.ErrNotRouted):
		writeErrorBody(ctx, consts.StatusBadRequest, "not_routed", err.Error())
	case errors.Is(err, trait.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, setup.ErrInvalidRequest),
		errors.Is(err, setup.ErrEmptyRoom):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, observe.ErrNotSpectating):
		writeErrorBody(ctx, consts.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeCheckError(ctx *app.RequestContext, checkErr *trait.ActionCheckError) {
	status := consts.StatusConflict
	switch {
	case errors.Is(checkErr, trait.ErrNotFound):
		status = consts.StatusNotFound
	case errors.Is(checkErr, trait.ErrForbidden):
		status = consts.StatusForbidden
	case errors.Is(checkErr, trait.ErrNotImplemented):
		status = consts.StatusNotImplemented
	case errors.Is(checkErr, trait.ErrInvalidRequest):
		status = consts.StatusBadRequest
	}
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    trait.KindLabel(checkErr),
			"origin":  checkErr.Origin,
			"message": checkErr.Message,
		},
	})
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
