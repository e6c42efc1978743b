package dto

type CreatePlanRequest struct {
	Focus string `json:"focus"`
	Email string `json:"email" validate:"omitempty,email"`
}

type PlanResponse struct {
	Date    string `json:"date"`
	Content string `json:"content"`
	Emailed bool   `json:"emailed"`
}
