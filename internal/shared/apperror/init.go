package apperror

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9]{8}$`)

func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations wires json field names and the custom tags used by request DTOs.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// phone8: exactly eight ascii digits
	_ = v.RegisterValidation("phone8", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	// notfuture: YYYY-MM-DD not after today
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if raw == "" {
			return true
		}
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return false
		}
		today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
		return !d.After(today)
	})
}

func IsPhone(v string) bool {
	return phonePattern.MatchString(v)
}
