package controller

import (
	"path/filepath"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// pageController serves the static views; the dashboard picks a page by the
// session's role.
type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
	AIChat(ctx *fiber.Ctx) error
	MyMentors(ctx *fiber.Ctx) error
}

type pageController struct {
	viewsDir string
}

func NewPageController(viewsDir string) IPageController {
	return &pageController{viewsDir: viewsDir}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Get("/dashboard", serverutils.RequireAuthPage, c.Dashboard)
	r.Get("/ai-chat", serverutils.RequireAuthPage, c.AIChat)
	r.Get("/my-mentors", serverutils.RequireAuthPage, c.MyMentors)
}

func (c *pageController) Index(ctx *fiber.Ctx) error {
	return ctx.SendFile(filepath.Join(c.viewsDir, "index.html"))
}

func (c *pageController) Dashboard(ctx *fiber.Ctx) error {
	sess := serverutils.SessionFromCtx(ctx)

	page := "studentdashboard.html"
	if sess.Role == string(entity.UserRoleMentor) {
		page = "mentordashboard.html"
	}
	return ctx.SendFile(filepath.Join(c.viewsDir, page))
}

func (c *pageController) AIChat(ctx *fiber.Ctx) error {
	return ctx.SendFile(filepath.Join(c.viewsDir, "ai-chat.html"))
}

func (c *pageController) MyMentors(ctx *fiber.Ctx) error {
	return ctx.SendFile(filepath.Join(c.viewsDir, "mentor-matching.html"))
}
