package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhaverenterprises/uniform-admin/internal/money"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl": deps.ContentTemplateFor,
		"rupees":      money.Rupees,
		"amount":      money.Format,
		"words":       money.Words,
		"number":      money.Count,
		"add":         func(a, b int) int { return a + b },
		"sub":         func(a, b int) int { return a - b },
		"dict":        dict,
		"statusClass": StatusClass,
		"boolText":    boolText,
		"orDash":      orDash,
		"truncate":    Truncate,
		"mul":         func(d decimal.Decimal, n int) decimal.Decimal { return d.Mul(decimal.NewFromInt(int64(n))) },
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - output of our own html/template set; values were escaped during ExecuteTemplate.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// dict builds a map from alternating keys and values, for passing several
// values into a partial.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[k] = pairs[i+1]
	}
	return m, nil
}

// StatusClass maps backend statuses onto badge styles.
func StatusClass(status string) string {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "APPROVED", "ASSIGNED", "DELIVERED", "RECEIVED", "USED", "REFUNDED", "DONE":
		return "badge-success"
	case "PENDING", "DRAFT":
		return "badge-warning"
	case "REJECTED", "CANCELLED", "CANCELED", "EXPIRED", "FAILED":
		return "badge-danger"
	case "SKIPPED":
		return "badge-muted"
	default:
		return "badge-light"
	}
}

// boolText renders a nullable flag. Nil reads as pending.
func boolText(v *bool) string {
	switch {
	case v == nil:
		return "Pending"
	case *v:
		return "Yes"
	default:
		return "No"
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Truncate shortens s to maxLen runes, ending with an ellipsis when cut.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen > 1 {
		return string(runes[:maxLen-1]) + "…"
	}
	return string(runes[:1])
}
