// Copyright (c) 2025 A Bit of Help, Inc.

package validation

import (
	"fmt"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *playground.Validate
)

// validator returns the shared, lazily-initialized struct validator. The
// metadata build tool validates every region record (descriptors included,
// number-format entries not) this way before it is allowed into the
// compiled blob (§6.3).
func validator() *playground.Validate {
	once.Do(func() {
		instance = playground.New()
	})
	return instance
}

// FieldError describes one failed validation tag on one field.
type FieldError struct {
	Field string
	Tag   string
	Value any
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: failed %q (got %v)", e.Field, e.Tag, e.Value)
}

// Struct validates s against its `validate:"..."` struct tags and returns
// one FieldError per failing field, in the order the validator reports them.
func Struct(s any) []FieldError {
	err := validator().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "<struct>", Tag: "unknown", Value: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Namespace(), Tag: fe.Tag(), Value: fe.Value()})
	}
	return out
}

// Summarize joins field errors into a single human-readable line, used when
// the build tool reports a rejected source record.
func Summarize(errs []FieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
