package controller

import (
	"mentorlink-be/internal/pkg/serverutils"
	"mentorlink-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetSessionProfile(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Get("/user/profile", serverutils.RequireAuth, c.GetSessionProfile)
	r.Get("/api/user/profile", serverutils.RequireAuth, c.GetProfile)
}

// GetSessionProfile answers from the session identity alone; no store trip.
func (c *userController) GetSessionProfile(ctx *fiber.Ctx) error {
	sess := serverutils.SessionFromCtx(ctx)
	return ctx.JSON(fiber.Map{
		"success": true,
		"name":    sess.Username,
		"role":    sess.Role,
	})
}

// GetProfile re-fetches the full record from the store so the payload is
// never stale against the source of truth.
func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	sess := serverutils.SessionFromCtx(ctx)

	res, err := c.service.GetProfile(ctx.Context(), sess.UserID)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"user":    res,
	})
}
