package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ValidationError is a single schema violation: the dotted field path,
// the violated constraint, and the offending value.
type ValidationError struct {
	Path    string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationErrors is the aggregated result of a full schema walk.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// HasErrors returns true if there are validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// UnrecognizedShapeError is returned when a document declares no kind,
// or a kind matching neither known document shape.
type UnrecognizedShapeError struct {
	Kind any
}

// Error implements the error interface.
func (e *UnrecognizedShapeError) Error() string {
	if e.Kind == nil {
		return `document does not declare a kind (expected "Gateway" or "Storefront")`
	}
	return fmt.Sprintf(`unrecognized document kind %v (expected "Gateway" or "Storefront")`, e.Kind)
}

// DetectKind reads the top-level kind field of a raw document. A
// missing or unknown kind yields an *UnrecognizedShapeError.
func DetectKind(doc Document) (DocumentKind, error) {
	raw, ok := doc["kind"]
	if !ok || raw == nil {
		return "", &UnrecognizedShapeError{}
	}

	s, ok := raw.(string)
	if !ok {
		return "", &UnrecognizedShapeError{Kind: raw}
	}

	switch DocumentKind(s) {
	case KindGateway:
		return KindGateway, nil
	case KindStorefront:
		return KindStorefront, nil
	default:
		return "", &UnrecognizedShapeError{Kind: raw}
	}
}

// ValidateGateway validates a raw document against the gateway shape.
// All violations found during the walk are collected and returned
// together.
func ValidateGateway(doc Document) error {
	return validateDocument(doc, KindGateway, gatewayShape)
}

// ValidateStorefront validates a raw document against the storefront
// shape.
func ValidateStorefront(doc Document) error {
	return validateDocument(doc, KindStorefront, storefrontShape)
}

func validateDocument(doc Document, kind DocumentKind, shape Shape) error {
	if doc == nil {
		return ValidationErrors{{Message: "document is empty"}}
	}

	declared, err := DetectKind(doc)
	if err != nil {
		return err
	}
	if declared != kind {
		return ValidationErrors{{
			Path:    "kind",
			Message: fmt.Sprintf("kind must be %q", kind),
			Value:   string(declared),
		}}
	}

	w := &walker{}
	w.walkShape("", map[string]any(doc), shape)
	if w.errors.HasErrors() {
		return w.errors
	}
	return nil
}

// walker validates a raw document depth-first against shape
// descriptors, accumulating every violation it finds.
type walker struct {
	errors ValidationErrors
}

func (w *walker) addError(path, message string, value any) {
	w.errors = append(w.errors, ValidationError{Path: path, Message: message, Value: value})
}

// walkShape checks every declared field of shape against doc. Fields
// are visited in name order so repeated runs report violations in a
// stable order.
func (w *walker) walkShape(path string, doc map[string]any, shape Shape) {
	names := make([]string, 0, len(shape))
	for name := range shape {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := shape[name]
		fieldPath := joinPath(path, name)

		val, ok := doc[name]
		if !ok || val == nil {
			if field.Required {
				w.addError(fieldPath, "required field is missing", nil)
			}
			continue
		}
		w.walkField(fieldPath, val, field)
	}
}

func (w *walker) walkField(path string, val any, f Field) {
	switch f.Type {
	case TypeString:
		if _, ok := val.(string); !ok {
			w.addError(path, "expected a string", val)
		}

	case TypeInt:
		n, ok := asInt(val)
		if !ok {
			w.addError(path, "expected an integer", val)
			return
		}
		if (f.Min != 0 || f.Max != 0) && (n < f.Min || n > f.Max) {
			w.addError(path, fmt.Sprintf("must be between %d and %d", f.Min, f.Max), val)
		}

	case TypeBool:
		if _, ok := val.(bool); !ok {
			w.addError(path, "expected a boolean", val)
		}

	case TypeDuration:
		s, ok := val.(string)
		if !ok {
			w.addError(path, `expected a duration string such as "30s"`, val)
			return
		}
		if _, err := time.ParseDuration(s); err != nil {
			w.addError(path, fmt.Sprintf("invalid duration %q", s), val)
		}

	case TypeEnum:
		s, ok := val.(string)
		if !ok || !containsString(f.Enum, s) {
			w.addError(path, fmt.Sprintf("must be one of: %s", strings.Join(f.Enum, ", ")), val)
		}

	case TypeObject:
		m, ok := asMap(val)
		if !ok {
			w.addError(path, "expected a mapping", val)
			return
		}
		w.walkShape(path, m, f.Fields)

	case TypeList:
		items, ok := val.([]any)
		if !ok {
			w.addError(path, "expected a list", val)
			return
		}
		for i, item := range items {
			w.walkField(fmt.Sprintf("%s[%d]", path, i), item, *f.Elem)
		}

	case TypeMap:
		m, ok := asMap(val)
		if !ok {
			w.addError(path, "expected a mapping", val)
			return
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.walkField(joinPath(path, k), m[k], *f.Elem)
		}

	case TypeUnion:
		for _, alt := range f.Alternatives {
			probe := &walker{}
			probe.walkField(path, val, alt)
			if !probe.errors.HasErrors() {
				return
			}
		}
		w.addError(path, "value matches none of the allowed forms", val)
	}
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func asMap(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case Document:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

func asInt(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
