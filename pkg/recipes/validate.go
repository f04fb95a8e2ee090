package recipes

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/identity"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// report fields by their wire names
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("identity", func(fl validator.FieldLevel) bool {
			return identity.Valid(fl.Field().String())
		})
	})

	return validate
}

// validateStruct runs the struct tags of s and returns one ErrBadRequest per failing field,
// combined with multierr. prefix locates s inside the request, e.g. "ingredients[2].".
func validateStruct(prefix string, s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	var errs error

	for _, fieldError := range fieldErrors {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s%s %s", ErrBadRequest, prefix, fieldError.Field(), describe(fieldError)))
	}

	return errs
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fieldError.Param()
	case "identity":
		return "must contain at least one letter"
	default:
		return "failed the " + fieldError.Tag() + " check"
	}
}

func linePrefix(index int) string {
	return fmt.Sprintf("ingredients[%d].", index)
}

// validateLines checks every line and rejects two lines naming the same ingredient. complete
// demands unit_of_measure and quantity on every line, as Create does.
func validateLines(lines []IngredientLine, complete bool) error {
	var errs error

	seen := make(map[int64]int, len(lines))

	for index, line := range lines {
		if err := validateStruct(linePrefix(index), line); err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		if complete {
			errs = multierr.Append(errs, requireComplete(index, line))
		}

		ingredientID := identity.Derive(*line.Name)
		if first, ok := seen[ingredientID]; ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: ingredients[%d] repeats ingredient %q from ingredients[%d]",
				ErrBadRequest, index, *line.Name, first))

			continue
		}

		seen[ingredientID] = index
	}

	return errs
}

// requireComplete checks the fields a new association cannot do without. Create uses it for every
// line, Update only for lines that insert.
func requireComplete(index int, line IngredientLine) error {
	var errs error

	if line.Delete {
		errs = multierr.Append(errs, fmt.Errorf("%w: %sdelete is not allowed on a new recipe", ErrBadRequest, linePrefix(index)))
	}

	if line.UnitOfMeasure == nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %sunit_of_measure is required", ErrBadRequest, linePrefix(index)))
	}

	if line.Quantity == nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: %squantity is required", ErrBadRequest, linePrefix(index)))
	}

	return errs
}
