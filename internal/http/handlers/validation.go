package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	types "github.com/gyansetu/gyansetu-backend/internal/domain"
)

var registerOnce sync.Once

// RegisterValidators adds the `role` binding tag to gin's validator engine.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			_, err := types.ParseRole(fl.Field().String())
			return err == nil
		})
	})
}
