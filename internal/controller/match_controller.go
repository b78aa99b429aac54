package controller

import (
	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/apperror"
	"mentorlink-be/internal/pkg/serverutils"
	"mentorlink-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMatchController interface {
	RegisterRoutes(r fiber.Router)
	FindMentors(ctx *fiber.Ctx) error
	FindStudents(ctx *fiber.Ctx) error
	SearchMentors(ctx *fiber.Ctx) error
}

type matchController struct {
	service service.IMatchService
}

func NewMatchController(service service.IMatchService) IMatchController {
	return &matchController{service: service}
}

func (c *matchController) RegisterRoutes(r fiber.Router) {
	r.Post("/findmentors", serverutils.RequireAuth, c.FindMentors)
	r.Post("/findstudents", serverutils.RequireAuth, c.FindStudents)
	r.Post("/search-mentors", serverutils.RequireAuth, c.SearchMentors)
}

func (c *matchController) FindMentors(ctx *fiber.Ctx) error {
	sess := serverutils.SessionFromCtx(ctx)

	mentors, err := c.service.FindMentors(ctx.Context(), sess.UserID)
	if err != nil {
		// Zero matches is a soft outcome, not an error: clients render
		// "no results" off the success flag.
		if apperror.IsKind(err, apperror.KindNotFound) {
			return ctx.JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Mentors found matching your interests.",
		"mentors": mentors,
	})
}

func (c *matchController) FindStudents(ctx *fiber.Ctx) error {
	var req dto.FindStudentsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	students, err := c.service.FindStudents(ctx.Context(), req.Courses)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return ctx.JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":  true,
		"message":  "Students found matching the courses",
		"students": students,
	})
}

func (c *matchController) SearchMentors(ctx *fiber.Ctx) error {
	var req dto.SearchMentorsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	mentors, err := c.service.SearchMentors(ctx.Context(), req.SearchQuery)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return ctx.JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"mentors": mentors,
	})
}
