package controller

import (
	"github.com/gofiber/fiber/v2"

	"thrapy-be/internal/dto"
	"thrapy-be/internal/pkg/apperror"
	"thrapy-be/internal/pkg/serverutils"
	"thrapy-be/internal/service"
)

type ITherapistController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Register(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	SetAvailability(ctx *fiber.Ctx) error
}

type therapistController struct {
	service service.ITherapistService
}

func NewTherapistController(service service.ITherapistService) ITherapistController {
	return &therapistController{service: service}
}

func (c *therapistController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	// Listing is public; registration and availability need a caller.
	r.Get("/therapists", c.List)

	h := r.Group("/therapist", auth)
	h.Post("/register", c.Register)
	h.Post("/availability", c.SetAvailability)
}

func (c *therapistController) Register(ctx *fiber.Ctx) error {
	var req dto.TherapistRegistrationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	profile, err := c.service.RegisterTherapist(ctx.Context(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Therapist profile created",
		"data":    profile,
	})
}

func (c *therapistController) List(ctx *fiber.Ctx) error {
	therapists, err := c.service.GetTherapists(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Available therapists",
		"data":    therapists,
	})
}

func (c *therapistController) SetAvailability(ctx *fiber.Ctx) error {
	var req dto.UpdateAvailabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	if err := c.service.SetAvailability(ctx.Context(), serverutils.CurrentUser(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Availability updated successfully",
		"data":    nil,
	})
}
