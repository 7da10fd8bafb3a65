package controller

import (
	"github.com/gofiber/fiber/v2"

	"thrapy-be/internal/dto"
	"thrapy-be/internal/pkg/apperror"
	"thrapy-be/internal/pkg/serverutils"
	"thrapy-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "User registered successfully",
		"data":    res,
	})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login successful",
		"data":    res,
	})
}
