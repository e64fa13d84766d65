package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sidapp/mongo-user-service/internal/domain/entity"
)

// Violation is one field-level rule failure.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error aggregates every violation found in a single payload. All rules are
// evaluated; the caller gets the full set, not just the first failure.
type Error struct {
	Violations []Violation
}

// Error joins the violations as "field: reason" pairs, comma-separated.
func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}
	return strings.Join(parts, ", ")
}

// userRules mirrors the user payload with its field constraints. Values are
// whitespace-trimmed before evaluation so blank-only input fails required.
type userRules struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,intlphone"`
	Role  string `json:"role" validate:"required"`
}

var phonePattern = regexp.MustCompile(`^\+?[0-9. ()-]{7,25}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateUser checks the candidate against the field rules and returns nil
// or the aggregated violations. It never touches storage.
func ValidateUser(u *entity.User) *Error {
	rules := userRules{
		Name:  strings.TrimSpace(u.Name),
		Email: strings.TrimSpace(u.Email),
		Phone: strings.TrimSpace(u.Phone),
		Role:  strings.TrimSpace(u.Role),
	}
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Violations: []Violation{{Field: "payload", Reason: err.Error()}}}
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{Field: fe.Field(), Reason: reasonFor(fe)})
	}
	return &Error{Violations: out}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		if fe.Tag() == "required" {
			return "Name is required"
		}
		return "Name must be between 2 and 100 characters"
	case "email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Email must be valid"
	case "phone":
		return "Phone number is invalid"
	case "role":
		return "Role is required"
	default:
		return "is invalid"
	}
}
