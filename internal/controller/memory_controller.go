package controller

import (
	"personal-assistant-be/internal/dto"
	"personal-assistant-be/internal/pkg/serverutils"
	"personal-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMemoryController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Store(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type memoryController struct {
	memoryService service.IMemoryService
}

func NewMemoryController(memoryService service.IMemoryService) IMemoryController {
	return &memoryController{
		memoryService: memoryService,
	}
}

func (c *memoryController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/memory/v1")
	h.Use(guard)
	h.Post("", c.Store)
	h.Post("search", c.Search)
	h.Delete(":id", c.Delete)
}

func (c *memoryController) Store(ctx *fiber.Ctx) error {
	var req dto.StoreMemoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.memoryService.Store(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success store memory", res))
}

func (c *memoryController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchMemoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.memoryService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search memory", res))
}

func (c *memoryController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "memory id is required")
	}

	if err := c.memoryService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete memory", nil))
}
