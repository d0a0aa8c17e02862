package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", apperror.ErrForbidden)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusForbidden, httpErr.Status)
		assert.Equal(t, apperror.CodeForbidden, httpErr.Code)
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})
}

func TestWithDetailsStillMatchesSentinel(t *testing.T) {
	err := apperror.ErrInvalidInput.WithDetails("x")

	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Nil(t, apperror.ErrInvalidInput.Details)
}

type phoneInput struct {
	Phone    string `json:"phone" validate:"required,phone8"`
	HireDate string `json:"hire_date" validate:"omitempty,notfuture"`
}

func TestCustomValidations(t *testing.T) {
	v := validator.New()
	apperror.RegisterValidations(v)

	assert.NoError(t, v.Struct(phoneInput{Phone: "12345678", HireDate: "2020-01-01"}))
	assert.Error(t, v.Struct(phoneInput{Phone: "1234567"}))
	assert.Error(t, v.Struct(phoneInput{Phone: "1234567a"}))
	assert.Error(t, v.Struct(phoneInput{Phone: "12345678", HireDate: "2999-01-01"}))
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	apperror.RegisterValidations(v)

	err := apperror.MapValidationError(v.Struct(phoneInput{}))

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Phone is required", httpErr.Message)
	details, ok := httpErr.Details.([]apperror.FieldError)
	assert.True(t, ok)
	assert.Equal(t, "phone", details[0].Field)
}

func TestConflictNamesTheField(t *testing.T) {
	httpErr := apperror.ToHTTP(apperror.Conflict("phone", "Phone already exists"))

	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, apperror.CodeConflict, httpErr.Code)
	assert.Equal(t, []apperror.FieldError{{Field: "phone", Message: "Phone already exists"}}, httpErr.Details)
}
