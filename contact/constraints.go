package contact

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"phonebook/errs"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\d{2,3}-\d+$`)

var validate = newValidator()

// constrained mirrors the schema every store enforces on write.
// Rules run left to right and stop at the first failure of each field.
type constrained struct {
	Name   string `validate:"required,min=3"`
	Number string `validate:"required,min=8,phonenumber"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phonenumber", validatePhoneNumber)
	return v
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return phonePattern.MatchString(fl.Field().String())
}

// CheckConstraints reports every field of c that violates the stored schema.
// The returned error carries one message per failing field, comma separated.
func CheckConstraints(c Contact) error {
	err := validate.Struct(constrained{Name: c.Name, Number: c.Number})
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.Errorf(errs.EINVALID, "validation failed")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, constraintMessage(fe))
	}
	return errs.Errorf(errs.EINVALID, "%s", strings.Join(messages, ","))
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.StructField() + "." + fe.Tag() {
	case "Name.required":
		return "Name is required"
	case "Name.min":
		return "Name must be at least 3 characters long"
	case "Number.required":
		return "Number is required"
	case "Number.min":
		return "Number must be at least 8 characters long"
	case "Number.phonenumber":
		return fmt.Sprintf("%v is not a valid phone number ! Use format XX-XXXXXX or XXX-XXXXXX", fe.Value())
	}
	return fe.Field() + " failed on " + fe.Tag()
}
