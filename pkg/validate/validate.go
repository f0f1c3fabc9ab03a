package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	TagPatronID = "patron_id"
	TagISBN13   = "isbn13"
)

var (
	patronIDRe = regexp.MustCompile(`^[0-9]{6}$`)
	isbn13Re   = regexp.MustCompile(`^[0-9]{13}$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation(TagPatronID, func(fl validator.FieldLevel) bool { //nolint:errcheck
		return patronIDRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation(TagISBN13, func(fl validator.FieldLevel) bool { //nolint:errcheck
		return isbn13Re.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate satisfies echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) Var(field interface{}, tag string) error {
	return cv.validator.Var(field, tag)
}

var std = NewCustomValidator()

// PatronID reports whether id is exactly six ASCII digits.
func PatronID(id string) bool {
	return std.Var(id, TagPatronID) == nil
}

// ISBN13 reports whether isbn is exactly thirteen ASCII digits.
func ISBN13(isbn string) bool {
	return std.Var(isbn, TagISBN13) == nil
}
