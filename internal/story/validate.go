package story

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validation failures. Validate joins every problem it finds, so callers can
// test for any of these with errors.Is.
var (
	ErrInvalidField      = errors.New("invalid field")
	ErrDuplicateNode     = errors.New("duplicate node id")
	ErrMissingRoot       = errors.New("root node does not exist")
	ErrDanglingChoice    = errors.New("choice leads to a missing node")
	ErrEndStepHasChoices = errors.New("end step has choices")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
		_, err := ParseHexColor(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks a definition's fields and graph, returning all problems joined.
func Validate(def *Definition) error {
	var errs []error

	if err := validate.Struct(def); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("story validation failed: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("%w: %s fails %q", ErrInvalidField, fe.Namespace(), fe.Tag()))
		}
	}

	errs = append(errs, validateGraph(def)...)
	return errors.Join(errs...)
}

// validateGraph checks the id references between nodes.
func validateGraph(def *Definition) []error {
	var errs []error

	ids := make(map[int]bool, len(def.Nodes))
	for _, n := range def.Nodes {
		if ids[n.ID] {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID))
		}
		ids[n.ID] = true
	}

	if !ids[def.RootID] {
		errs = append(errs, fmt.Errorf("%w: %d", ErrMissingRoot, def.RootID))
	}

	for _, n := range def.Nodes {
		if n.IsEndStep && n.HasChoices() {
			errs = append(errs, fmt.Errorf("%w: node %d has %d", ErrEndStepHasChoices, n.ID, len(n.Choices)))
		}
		for i, c := range n.Choices {
			if next, ok := c.Next(); ok && !ids[next] {
				errs = append(errs, fmt.Errorf("%w: node %d choice %d -> %d", ErrDanglingChoice, n.ID, i, next))
			}
		}
	}

	return errs
}
