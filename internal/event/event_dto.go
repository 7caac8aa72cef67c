package event

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartDate   string  `json:"startDate" binding:"required"`
}

type EventResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   string  `json:"startDate"`
	CreatedBy   string  `json:"createdBy"`
}
