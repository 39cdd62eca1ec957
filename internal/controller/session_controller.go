package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sentia-be/internal/pkg/serverutils"
	"sentia-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Get("", c.List)
	h.Delete(":id", c.Delete)
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	res, err := c.sessionService.ListSessions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Sessions", res))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	res, err := c.sessionService.DeleteSession(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Session deleted", res))
}
