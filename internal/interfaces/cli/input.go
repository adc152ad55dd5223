package cli

import (
	"bufio"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-ranking/internal/usecase"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks a form before it is sent. The returned error matches
// usecase.ErrInvalidInput.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "len":
		return field + " must be " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "min":
		return field + " needs at least " + fe.Param() + " value"
	case "oneof":
		return field + " must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte", "gt":
		return field + " must be at least " + fe.Param()
	case "lte":
		return field + " must be at most " + fe.Param()
	case "nefield":
		return field + " must differ from the home team"
	case "url":
		return field + " must be a valid URL"
	case "alpha":
		return field + " must contain letters only"
	case "datetime":
		return field + " must use the format " + fe.Param()
	default:
		return field + " is invalid"
	}
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s id %q", usecase.ErrInvalidInput, what, arg)
	}
	return id, nil
}

func parseIDs(raw []string, what string) ([]int64, error) {
	out := make([]int64, 0, len(raw))
	for _, item := range raw {
		id, err := parseID(item, what)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// confirm asks on stderr and reads the answer from stdin. yes skips the
// question.
func confirm(cmd *cobra.Command, question string, yes bool) bool {
	if yes {
		return true
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// readFailed prints the inline error of a failed read with a retry hint.
func readFailed(cmd *cobra.Command, err error, fallback string) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s\nRun `%s` again to retry.\n", usecase.ErrorMessage(err, fallback), cmd.CommandPath())
	return errReported
}
