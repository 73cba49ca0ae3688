package request

import (
	"strings"
	"sync"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/domain/reservation"
	"coshare-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidations installs the custom tags used by the request DTOs on gin's validator.
func RegisterValidations() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errs.New("gin binding validator is not go-playground/validator")
			return
		}
		custom := map[string]validator.Func{
			"notblank":        notBlank,
			"priority":        isPriority,
			"resolution_type": isResolutionType,
			"decision":        isDecision,
		}
		for tag, fn := range custom {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = errs.Wrapf(err, "register validation %s", tag)
				return
			}
		}
	})
	return registerErr
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isPriority(fl validator.FieldLevel) bool {
	_, ok := reservation.ParsePriority(fl.Field().String())
	return ok
}

func isResolutionType(fl validator.FieldLevel) bool {
	return conflict.ResolutionType(fl.Field().String()).IsValid()
}

func isDecision(fl validator.FieldLevel) bool {
	return conflict.Decision(fl.Field().String()).IsValid()
}
