package user

import (
	"fmt"
	"math"
	"sort"
)

// fieldKind is the JSON type a field value must decode to.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
)

func (k fieldKind) String() string {
	if k == kindInt {
		return "integer"
	}
	return "string"
}

// fieldRule pairs a field's expected type with its value predicate.
// The predicate runs only after the type check passed.
type fieldRule struct {
	kind  fieldKind
	check func(any) bool
}

// schema is the explicit validation table for User fields.
var schema = map[string]fieldRule{
	"age":   {kindInt, func(v any) bool { n := asInt(v); return 0 < n && n < 100 }},
	"name":  {kindString, func(v any) bool { return v.(string) != "" }},
	"email": {kindString, func(v any) bool { return v.(string) != "" }},
	"sex":   {kindString, func(v any) bool { return Sex(v.(string)).IsValid() }},
}

// required lists the fields a full construction must supply.
var required = []string{"age", "email", "name", "sex"}

// FieldError reports a single invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Validate checks every supplied field against the schema and returns the
// first failure. Partial field sets are allowed; presence of required fields
// is the caller's concern, never this function's.
func Validate(f Fields) error {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := checkField(name, f[name]); err != nil {
			return err
		}
	}
	return nil
}

func checkField(name string, value any) error {
	rule, ok := schema[name]
	if !ok {
		return &FieldError{Field: name, Reason: "is not a known field"}
	}
	if !matchesKind(rule.kind, value) {
		return &FieldError{Field: name, Reason: "has wrong type, expected " + rule.kind.String()}
	}
	if !rule.check(value) {
		return &FieldError{Field: name, Reason: "has wrong value"}
	}
	return nil
}

// matchesKind reports whether value decodes to the expected JSON type.
// Numbers count as integers only when they have no fractional part.
func matchesKind(k fieldKind, v any) bool {
	switch k {
	case kindString:
		_, ok := v.(string)
		return ok
	case kindInt:
		switch n := v.(type) {
		case int, int64:
			return true
		case float64:
			return n == math.Trunc(n)
		}
	}
	return false
}

// Missing returns the required creation fields absent from f, sorted by name.
func Missing(f Fields) []string {
	var missing []string
	for _, name := range required {
		if _, ok := f[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
