package controller

import (
	"twin-chat-be/internal/dto"
	"twin-chat-be/internal/pkg/serverutils"
	"twin-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	UpdateUserDetails(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Post("/create_session", c.CreateSession)
	h.Get("/get_session", c.GetSession)
	h.Post("/update_user_details", c.UpdateUserDetails)
}

func (c *sessionController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewValidationError("Invalid request body")
		}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *sessionController) GetSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Query("session_id")
	if sessionId == "" {
		return serverutils.NewValidationError("session_id is required")
	}

	res, err := c.service.GetSession(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *sessionController) UpdateUserDetails(ctx *fiber.Ctx) error {
	var req dto.UpdateUserDetailsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateUserDetails(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
