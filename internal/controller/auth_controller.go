package controller

import (
	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/serverutils"
	"mentorlink-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	sessions *serverutils.SessionMiddleware
}

func NewAuthController(service service.IAuthService, sessions *serverutils.SessionMiddleware) IAuthController {
	return &authController{
		service:  service,
		sessions: sessions,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/register", c.Register)
	r.Post("/login", c.Login)
	r.Get("/logout", c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"data":    res,
	})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// Snapshot the identity reference into the session before responding.
	sess := serverutils.SessionFromCtx(ctx)
	sess.Authenticated = true
	sess.UserID = res.UserID
	sess.Username = res.Username
	sess.Role = res.Role
	c.sessions.Persist(sess)

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"role":    res.Role,
	})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if sess := serverutils.SessionFromCtx(ctx); sess != nil {
		c.sessions.Destroy(ctx, sess)
	}
	return ctx.Redirect("/login.html", fiber.StatusSeeOther)
}
