package service

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError 输入校验错误，携带字段级详情
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// newValidationError 创建校验错误
func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
