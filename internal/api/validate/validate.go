package validate

import (
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func Positive(field string, v float64) *ErrField {
	if !(v > 0) {
		return &ErrField{Field: field, Msg: "must be > 0"}
	}
	return nil
}

func ExactLen(field, value string, n int) *ErrField {
	if len(value) != n {
		return &ErrField{Field: field, Msg: "must be exactly " + strconv.Itoa(n) + " characters"}
	}
	return nil
}
