package validation

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxNodes       = 10000
	MaxEdges       = 100000
	MaxLabelLength = 256
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("nocontrol", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if unicode.IsControl(r) {
				return false
			}
		}
		return true
	})
}

// GraphRequest is an undirected graph given as a node list and an edge list
// of label pairs, plus an optional layout seed.
type GraphRequest struct {
	Nodes []string   `json:"nodes" yaml:"nodes" validate:"max=10000,dive,required,max=256,nocontrol"`
	Edges [][]string `json:"edges" yaml:"edges" validate:"max=100000,dive,len=2,dive,required,max=256"`
	Seed  *uint64    `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ValidateGraphRequest checks the shape of a graph request. It does not check
// referential integrity; graph construction reports unknown endpoints,
// duplicates and self-loops.
func ValidateGraphRequest(req *GraphRequest) error {
	if req == nil {
		return errors.New("graph request cannot be nil")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// ValidateLabel validates a single node label
func ValidateLabel(label string) error {
	if err := validate.Var(label, "required,max=256,nocontrol"); err != nil {
		return fmt.Errorf("label %q is invalid: %w", label, formatValidationError(err))
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Namespace()
		if field == "" {
			field = "value"
		}
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "len":
			return fmt.Errorf("%s: must have exactly %s elements", field, param)
		case "nocontrol":
			return fmt.Errorf("%s: must not contain control characters", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
