package feedback

type SubmitFeedbackRequest struct {
	Type    string `json:"type" binding:"required,oneof=3_month 6_month 12_month"`
	Content string `json:"content" binding:"required"`
}

type FeedbackResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	SubmittedAt string `json:"submittedAt"`
}
