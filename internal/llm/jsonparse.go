package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNoJSON       = errors.New("llm: no JSON value in text")
	ErrTrailingData = errors.New("llm: more than one JSON value in text")
	ErrEmptyList    = errors.New("llm: empty list")

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// markdown 코드 펜스 제거
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Decode parses the one JSON value in the generated text into T.
// Prose before the first '{' or '[' and after the value is ignored; a second
// JSON value after the first one is rejected.
func Decode[T any](text string) (T, error) {
	var v T
	raw, err := extractValue(StripFences(text))
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("llm: decode %T: %w", v, err)
	}
	return v, nil
}

// 첫 번째 여는 괄호부터 JSON 값 하나를 디코더로 읽는다
func extractValue(s string) (json.RawMessage, error) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return nil, ErrNoJSON
	}
	dec := json.NewDecoder(strings.NewReader(s[start:]))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("llm: decode JSON value: %w", err)
	}
	if strings.ContainsAny(s[start+int(dec.InputOffset()):], "{[") {
		return nil, ErrTrailingData
	}
	return raw, nil
}

// Validate checks validator tags on a struct, or on every element of a
// non-empty slice of structs.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return errors.New("llm: nil value")
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return ErrEmptyList
		}
		for i := 0; i < rv.Len(); i++ {
			if err := Validate(rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	case reflect.Struct:
		return validate.Struct(rv.Interface())
	}
	return nil
}

// DecodeStrict is Decode followed by Validate.
func DecodeStrict[T any](text string) (T, error) {
	v, err := Decode[T](text)
	if err != nil {
		return v, err
	}
	if err := Validate(v); err != nil {
		var zero T
		return zero, fmt.Errorf("llm: invalid %T: %w", v, err)
	}
	return v, nil
}
