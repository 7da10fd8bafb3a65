package controller

import (
	"github.com/gofiber/fiber/v2"

	"thrapy-be/internal/dto"
	"thrapy-be/internal/pkg/apperror"
	"thrapy-be/internal/pkg/serverutils"
	"thrapy-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/sessions", auth)
	h.Post("/create", c.Create)
	h.Get("/", c.List)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	session, err := c.service.CreateSession(ctx.Context(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Session created",
		"data":    session,
	})
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	sessions, err := c.service.GetUserSessions(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "User sessions",
		"data":    sessions,
	})
}
