package reporterrors

import (
	"fmt"
	"net/http"

	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"
)

var (
	ErrResponseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report not found",
		http.StatusNotFound,
	)
	ErrQuestionnaireNotFound = apperror.New(
		apperror.CodeNotFound,
		"Questionnaire not found",
		http.StatusNotFound,
	)
	ErrInvalidResponseID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report ID",
		http.StatusBadRequest,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeForbidden,
		"An employee profile is required",
		http.StatusForbidden,
	)
	ErrQuestionMismatch = apperror.Validation(
		"responses.question_id",
		"Every question must belong to the questionnaire",
	)
	ErrQuestionnaireMismatch = apperror.Validation(
		"questionnaire_id",
		"The correction must answer the same questionnaire",
	)
	ErrUnknownResponses = apperror.Validation(
		"response_ids",
		"Some selected responses do not exist",
	)
	ErrResponsesMismatch = apperror.Validation(
		"response_ids",
		"Selected responses must belong to the same report",
	)
)

// InvalidAnswer names the failing entry of a submission.
func InvalidAnswer(index int, message string) *apperror.AppError {
	return apperror.Validation(fmt.Sprintf("responses.%d.response", index), message)
}
