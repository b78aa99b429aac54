package serverutils

import (
	"fmt"
	"strings"

	"mentorlink-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest runs the struct tags on req and folds failures into a single
// validation error naming the offending fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation(err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "oneof":
			fields = append(fields, fmt.Sprintf("%s must be one of: %s", strings.ToLower(fe.Field()), fe.Param()))
		case "email":
			fields = append(fields, fmt.Sprintf("%s must be a valid email", strings.ToLower(fe.Field())))
		case "min":
			fields = append(fields, fmt.Sprintf("%s must have at least %s entries", strings.ToLower(fe.Field()), fe.Param()))
		default:
			fields = append(fields, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return apperror.Validation(strings.Join(fields, "; "))
}
