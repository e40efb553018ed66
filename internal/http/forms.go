package httpx

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhaverenterprises/uniform-admin/internal/http/validation"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var formValidator = validation.New()

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decodeForm copies values into the `form`-tagged fields of dst, which must
// be a pointer to a struct. Values are trimmed. Fields that fail to parse are
// reported by form name and left at their zero value.
func decodeForm(values url.Values, dst any) map[string]string {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		panic("decodeForm: dst must be a pointer to a struct")
	}
	rv = rv.Elem()
	rt := rv.Type()

	errs := map[string]string{}
	for i := range rt.NumField() {
		sf := rt.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("form"), ",")
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}
		if err := setField(rv.Field(i), raw); err != nil {
			errs[name] = validation.Label(name) + " must be a number."
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func setField(f reflect.Value, raw string) error {
	if f.Type() == decimalType {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return err
		}
		f.Set(reflect.ValueOf(d))
		return nil
	}
	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Int, reflect.Int64, reflect.Int32:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		f.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		f.SetBool(b)
	default:
		return fmt.Errorf("unsupported form field kind %s", f.Kind())
	}
	return nil
}

// parseAndValidate decodes the posted form into dst and validates it.
// Parse failures win over rule failures for the same field.
func parseAndValidate(values url.Values, dst any, msgs validation.Messages) map[string]string {
	parseErrs := decodeForm(values, dst)
	errs := formValidator.Struct(dst, msgs)
	if len(parseErrs) == 0 {
		return errs
	}
	if errs == nil {
		errs = map[string]string{}
	}
	for k, v := range parseErrs {
		errs[k] = v
	}
	return errs
}
