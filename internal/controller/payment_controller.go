package controller

import (
	"github.com/gofiber/fiber/v2"

	"thrapy-be/internal/pkg/serverutils"
	"thrapy-be/internal/service"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	GetHistory(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/payments", auth)
	h.Get("/history", c.GetHistory)
}

func (c *paymentController) GetHistory(ctx *fiber.Ctx) error {
	payments, err := c.service.GetPaymentHistory(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Payment history",
		"data":    payments,
	})
}
