package controller

import (
	"github.com/gofiber/fiber/v2"

	"thrapy-be/internal/dto"
	"thrapy-be/internal/pkg/apperror"
	"thrapy-be/internal/pkg/serverutils"
	"thrapy-be/internal/service"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	SendChat(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Post("/ai-chat", auth, c.SendChat)
	r.Get("/sessions/:id/chat-history", auth, c.GetChatHistory)
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	res, err := c.service.SendChat(ctx.Context(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "AI response",
		"data":    res,
	})
}

func (c *chatbotController) GetChatHistory(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")
	if sessionId == "" {
		return apperror.Validation("Session id required")
	}

	history, err := c.service.GetChatHistory(ctx.Context(), serverutils.CurrentUser(ctx), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Chat history",
		"data":    history,
	})
}
