// Package validation turns go-playground/validator results into per-field
// messages keyed by form field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Messages overrides the generated message for a field. Keys are either
// "field" (any failed rule) or "field.tag" (one rule).
type Messages map[string]string

// Validator validates form structs tagged with `form` and `validate`.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports fields by their form tag name and
// compares decimal.Decimal values numerically.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		default:
			return name
		}
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return &Validator{v: v}
}

// Struct validates s. It returns nil when s is valid.
func (x *Validator) Struct(s any, msgs Messages) map[string]string {
	return x.collect(x.v.Struct(s), msgs)
}

// Field validates a single value against tag, reporting failures under field.
func (x *Validator) Field(field string, value any, tag string, msgs Messages) map[string]string {
	err := x.v.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{field: "Invalid value."}
	}
	out := map[string]string{}
	for _, fe := range verrs {
		out[field] = pick(msgs, field, fe.Tag(), message(field, fe))
		break
	}
	return out
}

func (x *Validator) collect(err error, msgs Messages) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": "Invalid form submission."}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = pick(msgs, field, fe.Tag(), message(field, fe))
	}
	return out
}

func pick(msgs Messages, field, tag, fallback string) string {
	if m, ok := msgs[field+"."+tag]; ok {
		return m
	}
	if m, ok := msgs[field]; ok {
		return m
	}
	return fallback
}

func message(field string, fe validator.FieldError) string {
	label := Label(field)
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "email":
		return "Enter a valid email address."
	case "numeric":
		return label + " must contain digits only."
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters.", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return label + " is invalid."
	}
}

// Label turns a form field name such as "commissionPercentage" or "emailID"
// into "Commission percentage" and "Email ID".
func Label(field string) string {
	var words []string
	start := 0
	runes := []rune(field)
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	for i, w := range words {
		if strings.ToUpper(w) == w {
			continue
		}
		w = strings.ToLower(w)
		if i == 0 {
			w = strings.ToUpper(w[:1]) + w[1:]
		}
		words[i] = w
	}
	return strings.Join(words, " ")
}
