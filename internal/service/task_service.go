package service

import (
	"context"
	"fmt"
	"time"

	"personal-assistant-be/internal/constant"
	"personal-assistant-be/internal/dto"
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/internal/repository/unitofwork"
)

var ErrTaskNotFound = fmt.Errorf("task not found")

type ITaskService interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetAll(ctx context.Context, status string) ([]*dto.TaskResponse, error)
	GetById(ctx context.Context, id int64) (*dto.TaskResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{uowFactory: uowFactory}
}

func taskToResponse(t *entity.Task) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &entity.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      constant.TaskStatusPending,
		CreatedAt:   time.Now(),
	}
	if task.Priority == "" {
		task.Priority = constant.TaskPriorityMedium
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due_date: %w", err)
		}
		task.DueDate = &due
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TaskRepository().Create(ctx, task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

func (s *taskService) GetAll(ctx context.Context, status string) ([]*dto.TaskResponse, error) {
	specs := []specification.Specification{specification.ByPendingOrder{}}
	if status != "" {
		specs = append([]specification.Specification{specification.ByStatus{Status: status}}, specs...)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tasks, err := uow.TaskRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = taskToResponse(t)
	}
	return out, nil
}

func (s *taskService) GetById(ctx context.Context, id int64) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return taskToResponse(task), nil
}

func (s *taskService) Update(ctx context.Context, id int64, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TaskRepository()

	task, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
		if task.Status == constant.TaskStatusCompleted && task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		}
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := time.Parse("2006-01-02", *req.DueDate)
			if err != nil {
				return nil, fmt.Errorf("invalid due_date: %w", err)
			}
			task.DueDate = &due
		}
	}

	if err := repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TaskRepository()

	task, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	return repo.Delete(ctx, id)
}
