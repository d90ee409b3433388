package hackathon

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrFieldType    = errors.New("form field type mismatch")
)

// FormState holds the values of one form between submissions. It starts
// from an initial value, is changed field by field, and can be reset.
// A FormState is owned by a single request and is not safe for concurrent use.
type FormState[T any] struct {
	initial T
	current T
}

func NewFormState[T any](initial T) *FormState[T] {
	return &FormState[T]{initial: initial, current: initial}
}

// Value returns a copy of the current values.
func (f *FormState[T]) Value() T {
	return f.current
}

// Update applies fn to the current values.
func (f *FormState[T]) Update(fn func(*T)) {
	fn(&f.current)
}

// Reset restores the initial values.
func (f *FormState[T]) Reset() {
	f.current = f.initial
}

// SetField sets the struct field whose JSON name is name. Strings are
// converted for bool and int fields so raw HTML form values can be applied
// directly ("on" counts as true for checkboxes).
func (f *FormState[T]) SetField(name string, value any) error {
	v := reflect.ValueOf(&f.current).Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("form state of %s has no fields", v.Type())
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || jsonName(sf) != name {
			continue
		}
		return assign(v.Field(i), name, value)
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func assign(fv reflect.Value, name string, value any) error {
	val := reflect.ValueOf(value)
	if !val.IsValid() {
		fv.SetZero()
		return nil
	}
	if val.Type().AssignableTo(fv.Type()) {
		fv.Set(val)
		return nil
	}

	s, isString := value.(string)
	if isString {
		switch fv.Kind() {
		case reflect.Bool:
			if s == "on" {
				fv.SetBool(true)
				return nil
			}
			b, err := strconv.ParseBool(s)
			if err != nil {
				return fmt.Errorf("%w: %q wants a boolean, got %q", ErrFieldType, name, s)
			}
			fv.SetBool(b)
			return nil
		case reflect.Int, reflect.Int64, reflect.Int32:
			n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q wants a number, got %q", ErrFieldType, name, s)
			}
			fv.SetInt(n)
			return nil
		}
	}

	return fmt.Errorf("%w: %q wants %s, got %T", ErrFieldType, name, fv.Type(), value)
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

// NewRegistrationForm returns the initial values of the public registration
// form. leaderEmail and leaderName carry the identity handed over by the
// sign-in page and may be empty.
func NewRegistrationForm(leaderEmail, leaderName string) *FormState[RegistrationRecord] {
	return NewFormState(RegistrationRecord{
		TeamLeaderEmail: strings.TrimSpace(leaderEmail),
		TeamLeaderName:  strings.TrimSpace(leaderName),
	})
}

// NewManualEntryForm returns the initial values of the back-office Add Team
// form. Consents are pre-checked because the operator collects them offline.
func NewManualEntryForm() *FormState[RegistrationRecord] {
	return NewFormState(RegistrationRecord{
		TeamSize:           "2",
		Experience:         "beginner",
		AgreeToTerms:       true,
		AgreeToPhotography: true,
	})
}
