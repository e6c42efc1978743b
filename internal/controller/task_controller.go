package controller

import (
	"errors"
	"strconv"

	"personal-assistant-be/internal/dto"
	"personal-assistant-be/internal/pkg/serverutils"
	"personal-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type taskController struct {
	taskService service.ITaskService
}

func NewTaskController(taskService service.ITaskService) ITaskController {
	return &taskController{
		taskService: taskService,
	}
}

func (c *taskController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/task/v1")
	h.Use(guard)
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *taskController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.taskService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create task", res))
}

func (c *taskController) Index(ctx *fiber.Ctx) error {
	status := ctx.Query("status", "")

	res, err := c.taskService.GetAll(ctx.Context(), status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tasks", res))
}

func (c *taskController) Show(ctx *fiber.Ctx) error {
	id, err := parseTaskId(ctx)
	if err != nil {
		return err
	}

	res, err := c.taskService.GetById(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "task not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show task", res))
}

func (c *taskController) Update(ctx *fiber.Ctx) error {
	id, err := parseTaskId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.taskService.Update(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "task not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update task", res))
}

func (c *taskController) Delete(ctx *fiber.Ctx) error {
	id, err := parseTaskId(ctx)
	if err != nil {
		return err
	}

	if err := c.taskService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "task not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete task", nil))
}

func parseTaskId(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid task id")
	}
	return id, nil
}
