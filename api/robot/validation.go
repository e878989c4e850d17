package robot

import (
	"sync"

	"github.com/beka-birhanu/cleaner-api/path"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidations adds the "direction" rule to gin's validator.
func registerValidations() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("direction", validateDirection)
	})
	return err
}

// validateDirection accepts only the four compass directions.
func validateDirection(fl validator.FieldLevel) bool {
	return path.Direction(fl.Field().String()).Valid()
}
