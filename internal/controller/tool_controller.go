package controller

import (
	"personal-assistant-be/internal/dto"
	"personal-assistant-be/internal/pkg/serverutils"
	"personal-assistant-be/pkg/tools"

	"github.com/gofiber/fiber/v2"
)

type IToolController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Index(ctx *fiber.Ctx) error
	Invoke(ctx *fiber.Ctx) error
}

// toolController exposes the assistant's tool registry over HTTP so tools can
// be listed and exercised directly, outside a chat turn.
type toolController struct {
	registry *tools.Registry
}

func NewToolController(registry *tools.Registry) IToolController {
	return &toolController{
		registry: registry,
	}
}

func (c *toolController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/tool/v1")
	h.Use(guard)
	h.Get("", c.Index)
	h.Post(":name/invoke", c.Invoke)
}

func (c *toolController) Index(ctx *fiber.Ctx) error {
	descriptors := c.registry.List()

	res := make([]*dto.ToolDescriptorResponse, len(descriptors))
	for i, d := range descriptors {
		res[i] = &dto.ToolDescriptorResponse{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema(),
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tools", res))
}

func (c *toolController) Invoke(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "tool name is required")
	}

	var req dto.InvokeToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.Args == nil {
		req.Args = map[string]interface{}{}
	}

	// Invoke never returns a Go error; failures come back in the result shape.
	result := c.registry.Invoke(ctx.Context(), name, req.Args)

	return ctx.JSON(serverutils.SuccessResponse("Success invoke tool", result))
}
