package util

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Field errors from gin binding and from ValidateStruct name the json key.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// ValidateStruct applies the binding rules of a request struct, the same
// rules ShouldBindJSON enforces.
func ValidateStruct(obj interface{}) error {
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return BindingError(err)
	}
	return nil
}

// BindingError maps a bind or validation failure onto a ValidationError.
// Errors raised by a field decoder are already typed and pass through.
func BindingError(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return ValidationError(MISSING_FIELDS + ": " + strings.Join(fields, ", "))
	}
	return ValidationError(INVALID_REQUEST_BODY)
}

// IsMalformedJSON reports whether a bind failed before any field was read.
func IsMalformedJSON(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
