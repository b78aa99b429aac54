package controller

import (
	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/serverutils"
	"mentorlink-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	r.Post("/ai/chat", serverutils.RequireAuth, c.SendChat)
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	sess := serverutils.SessionFromCtx(ctx)

	res, err := c.service.SendChat(ctx.Context(), sess.ID, &req)
	if err != nil {
		// The chat route keeps its own failure shape: clients read the
		// fallback text from the response field.
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":  false,
			"response": "Failed to contact AI.",
		})
	}

	return ctx.JSON(fiber.Map{
		"success":  true,
		"response": res.Response,
	})
}
