package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-assistant-be/internal/dto"
	"personal-assistant-be/internal/pkg/logger"
	"personal-assistant-be/internal/pkg/mailer"
	"personal-assistant-be/internal/repository/unitofwork"
	"personal-assistant-be/pkg/tools"
)

var ErrPlanNotFound = fmt.Errorf("no plan for that date")

type IPlanService interface {
	CreateDailyPlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	GetPlanByDate(ctx context.Context, date string) (*dto.PlanResponse, error)
}

// planService drives the create_daily_plan tool and optionally emails the
// result, so the HTTP surface and the assistant share one code path.
type planService struct {
	registry     *tools.Registry
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewPlanService(
	registry *tools.Registry,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IPlanService {
	return &planService{
		registry:     registry,
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       log,
	}
}

func (s *planService) CreateDailyPlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	args := map[string]interface{}{}
	if req.Focus != "" {
		args["focus"] = req.Focus
	}

	result := s.registry.Invoke(ctx, "create_daily_plan", args)
	if !result.Success() {
		return nil, fmt.Errorf("%s", result.Error())
	}

	date, _ := result.Payload()["date"].(string)

	// The tool returns structured blocks when the model produced JSON and
	// plan_text otherwise; the stored row always keeps the raw model output.
	content, _ := result.Payload()["plan_text"].(string)
	if content == "" {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if plan, err := uow.PlanRepository().FindByDate(ctx, date); err == nil && plan != nil {
			content = plan.Content
		}
	}

	emailed := false
	if req.Email != "" && s.emailService != nil {
		html := "<pre>" + strings.ReplaceAll(content, "<", "&lt;") + "</pre>"
		if err := s.emailService.SendDailyPlan(req.Email, html); err != nil {
			s.logger.Warn("Plan", "failed to email daily plan", map[string]interface{}{
				"email": req.Email,
				"error": err.Error(),
			})
		} else {
			emailed = true
		}
	}

	return &dto.PlanResponse{
		Date:    date,
		Content: content,
		Emailed: emailed,
	}, nil
}

func (s *planService) GetPlanByDate(ctx context.Context, date string) (*dto.PlanResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := uow.PlanRepository().FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return &dto.PlanResponse{Date: plan.PlanDate, Content: plan.Content}, nil
}
