package notification

type SendNotificationRequest struct {
	UserID   string         `json:"userId" binding:"required,uuid"`
	Type     string         `json:"type" binding:"required"`
	Title    string         `json:"title" binding:"required"`
	Message  string         `json:"message" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}

type NotificationResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	IsRead    bool           `json:"isRead"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt string         `json:"createdAt"`
}
