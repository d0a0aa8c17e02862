package questionnaire

type QuestionInput struct {
	Type                     string    `json:"type" binding:"required,oneof=text textarea radio checkbox select number date email"`
	Question                 string    `json:"question" binding:"required"`
	Required                 bool      `json:"required"`
	Order                    *int      `json:"order" binding:"omitempty,min=0"`
	Options                  OptionSet `json:"options"`
	ConditionalQuestionIndex *int      `json:"conditional_question_index" binding:"omitempty,min=0"`
	ConditionalValue         *string   `json:"conditional_value" binding:"omitempty,max=255"`
}

// QuestionnaireRequest is shared by create and update. A nil Questions slice
// means the field was absent and existing questions are kept.
type QuestionnaireRequest struct {
	Title       string          `json:"title" binding:"required,max=255"`
	Description *string         `json:"description"`
	Status      string          `json:"status" binding:"required,oneof=published archived"`
	TargetType  string          `json:"target_type" binding:"required,oneof=employees supervisors"`
	Questions   []QuestionInput `json:"questions" binding:"dive"`
}

type ListFilter struct {
	Search *string
	Status *string
}

type ConditionalQuestionResponse struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

type QuestionResponse struct {
	ID                    uint                         `json:"id"`
	Type                  string                       `json:"type"`
	Question              string                       `json:"question"`
	Required              bool                         `json:"required"`
	Order                 int                          `json:"order"`
	Options               OptionSet                    `json:"options"`
	ConditionalQuestionID *uint                        `json:"conditional_question_id"`
	ConditionalValue      *string                      `json:"conditional_value"`
	ConditionalQuestion   *ConditionalQuestionResponse `json:"conditional_question"`
}

type QuestionnaireResponse struct {
	ID             uint               `json:"id"`
	Title          string             `json:"title"`
	Description    *string            `json:"description"`
	Status         string             `json:"status"`
	TargetType     string             `json:"target_type"`
	CreatedBy      *uint              `json:"created_by"`
	CreatorName    *string            `json:"creator_name"`
	QuestionsCount int                `json:"questions_count"`
	Questions      []QuestionResponse `json:"questions"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

type PublishedOption struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}
