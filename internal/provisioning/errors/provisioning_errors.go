package provisioningerrors

import "github.com/KATBlackCoder/rapportflow/internal/shared/apperror"

var ErrLastNameNotLatin = apperror.Validation(
	"last_name",
	"Last name must contain at least one latin letter",
)
