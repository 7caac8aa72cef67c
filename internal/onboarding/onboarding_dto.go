package onboarding

type ToggleTaskRequest struct {
	Completed bool    `json:"completed"`
	UserID    *string `json:"userId,omitempty" binding:"omitempty,uuid"`
}

type ValidateTaskRequest struct {
	UserID   string  `json:"userId" binding:"required,uuid"`
	Comments *string `json:"comments"`
}

type UpdateTaskStatusRequest struct {
	UserID      string  `json:"userId" binding:"required,uuid"`
	Completed   bool    `json:"completed"`
	HRValidated bool    `json:"hrValidated"`
	Comments    *string `json:"comments"`
}

type ResetJourneyRequest struct {
	ResetToStage       string `json:"resetToStage" binding:"omitempty,oneof=prepare orient land integrate excel"`
	KeepCompletedTasks bool   `json:"keepCompletedTasks"`
}

type ProgressResponse struct {
	UserID                  string `json:"userId"`
	Stage                   string `json:"stage"`
	Progress                int    `json:"progress"`
	StageStartDate          string `json:"stageStartDate"`
	EstimatedCompletionDate string `json:"estimatedCompletionDate"`
}

type TaskResponse struct {
	ID        string `json:"id"`
	Stage     string `json:"stage"`
	Order     int    `json:"order"`
	Title     string `json:"title"`
	IsDefault bool   `json:"isDefault"`
}

type TaskProgressResponse struct {
	TaskID          string  `json:"taskId"`
	UserID          string  `json:"userId"`
	Title           string  `json:"title,omitempty"`
	Stage           string  `json:"stage,omitempty"`
	Order           int     `json:"order,omitempty"`
	IsCompleted     bool    `json:"isCompleted"`
	CompletedAt     *string `json:"completedAt,omitempty"`
	HRValidated     bool    `json:"hrValidated"`
	HRValidatedAt   *string `json:"hrValidatedAt,omitempty"`
	HRComments      *string `json:"hrComments,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	SupervisorNotes *string `json:"supervisorNotes,omitempty"`
}

type StageBreakdown struct {
	Stage string                 `json:"stage"`
	Tasks []TaskProgressResponse `json:"tasks"`
}

type ProgressDetailResponse struct {
	ProgressResponse
	Stages []StageBreakdown `json:"stages"`
}
