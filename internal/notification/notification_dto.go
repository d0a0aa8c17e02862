package notification

type NotificationResponse struct {
	ID              uint    `json:"id"`
	Kind            string  `json:"kind"`
	Title           string  `json:"title"`
	Body            string  `json:"body"`
	QuestionnaireID *uint   `json:"questionnaire_id,omitempty"`
	ResponseID      *uint   `json:"response_id,omitempty"`
	Read            bool    `json:"read"`
	ReadAt          *string `json:"read_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
