package questionnaireerrors

import (
	"net/http"

	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
)

var (
	ErrQuestionnaireNotFound = apperror.New(
		apperror.CodeNotFound,
		"Questionnaire not found",
		http.StatusNotFound,
	)
	ErrInvalidQuestionnaireID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid questionnaire ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus       = apperror.Validation("status", "Status must be published or archived")
	ErrInvalidTargetType   = apperror.Validation("target_type", "Target type must be employees or supervisors")
	ErrInvalidQuestionType = apperror.Validation("questions.type", "Unknown question type")
)
