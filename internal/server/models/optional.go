package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
)

// Optional records whether a JSON key was present and whether it was null.
// encoding/json calls UnmarshalJSON for null too, so Set is reliable.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns a present Optional carrying an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// CategoryRef is the categoria_id key of a contact payload. null, "" and 0
// all mean "no category"; ID stays nil for them.
type CategoryRef struct {
	Set bool
	ID  *int64
}

func (r *CategoryRef) UnmarshalJSON(b []byte) error {
	r.Set = true
	r.ID = nil

	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}

	var raw string
	switch value := v.(type) {
	case nil:
		return nil
	case json.Number:
		raw = value.String()
	case string:
		raw = strings.TrimSpace(value)
		if raw == "" {
			return nil
		}
	default:
		return common.NewValidationError("categoria_id invalido: %s", string(b))
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return common.NewValidationError("categoria_id invalido: %s", raw)
	}
	if id != 0 {
		r.ID = &id
	}
	return nil
}

// CategoryID is a present categoria_id pointing at id.
func CategoryID(id int64) CategoryRef {
	return CategoryRef{Set: true, ID: &id}
}

func requiredString(o Optional[string], field string) (string, error) {
	v := strings.TrimSpace(o.Value)
	if o.Null || v == "" {
		return "", common.NewValidationError("%s no puede estar vacio", field)
	}
	return v, nil
}

func optionalString(o Optional[string]) *string {
	if o.Null {
		return nil
	}
	return blankToNil(&o.Value)
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func joinName(first string, last *string) string {
	if last == nil || strings.TrimSpace(*last) == "" {
		return first
	}
	return first + " " + *last
}
