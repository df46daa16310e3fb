package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError 汇总请求体的字段级错误，key 为 JSON 字段路径。
type ValidationError struct {
	Fields map[string]string
}

// Error 以稳定的字段顺序拼接错误描述。
func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", key, e.Fields[key]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add 记录一个字段错误，同一字段只保留第一条。
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewValidationError 构造单字段的校验错误。
func NewValidationError(field, message string) *ValidationError {
	verr := &ValidationError{}
	verr.Add(field, message)
	return verr
}

// IsValidationError 判断 err 链中是否包含 ValidationError。
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateStruct 运行 struct tag 校验并转换为 ValidationError。
func validateStruct(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrors {
		verr.Add(fieldPath(fe), describeFieldError(fe))
	}
	return verr
}

// validateValue 校验单个值，例如可空字段中实际传入的 URL。
func validateValue(verr *ValidationError, field string, value interface{}, tag string) {
	if err := validate.Var(value, tag); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			verr.Add(field, describeFieldError(fieldErrors[0]))
			return
		}
		verr.Add(field, "is invalid")
	}
}

// fieldPath 去掉最外层结构体名，例如 ContactInput.email -> email。
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fe.Field()
}

func describeFieldError(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	isList := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "min":
		switch {
		case isText:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case isList:
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		switch {
		case isText:
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		case isList:
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Nullable 区分 JSON 中缺失的字段与显式的 null，用于部分更新可空列。
type Nullable struct {
	Set   bool
	Value *string
}

// UnmarshalJSON 只有字段出现在请求体中时才会被调用。
func (n *Nullable) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}

// clearing 表示调用方要求清空该列（null 或空字符串）。
func (n Nullable) clearing() bool {
	return n.Set && (n.Value == nil || strings.TrimSpace(*n.Value) == "")
}

// trimmed 返回去掉首尾空白的值；未设置或清空时返回 nil。
func (n Nullable) trimmed() *string {
	if !n.Set || n.clearing() {
		return nil
	}
	value := strings.TrimSpace(*n.Value)
	return &value
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
