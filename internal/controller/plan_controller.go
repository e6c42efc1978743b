package controller

import (
	"errors"

	"personal-assistant-be/internal/dto"
	"personal-assistant-be/internal/pkg/serverutils"
	"personal-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type planController struct {
	planService service.IPlanService
}

func NewPlanController(planService service.IPlanService) IPlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/plan/v1")
	h.Use(guard)
	h.Post("", c.Create)
	h.Get("", c.Show)
}

func (c *planController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.planService.CreateDailyPlan(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create daily plan", res))
}

func (c *planController) Show(ctx *fiber.Ctx) error {
	date := ctx.Query("date", "")

	res, err := c.planService.GetPlanByDate(ctx.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no plan for that date")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show plan", res))
}
