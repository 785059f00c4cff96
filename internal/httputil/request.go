package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/envelope-zero/allocator/internal/uuid"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data and validates
// it against its binding tags.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		if texts := validationTexts(err); len(texts) > 0 {
			return errors.New(strings.Join(texts, ", "))
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// validationTexts returns readable messages for all failed validations in err.
// Bodies with a list of resources are validated per element.
func validationTexts(err error) []string {
	var texts []string

	var sliceErrors binding.SliceValidationError
	if errors.As(err, &sliceErrors) {
		for _, e := range sliceErrors {
			texts = append(texts, validationTexts(e)...)
		}
		return texts
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			texts = append(texts, ValidationErrorToText(e))
		}
	}

	return texts
}

// ValidationErrorToText returns a readable message for a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	case "dive":
		return fmt.Sprintf("%s contains an invalid element", e.Field())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// UUIDFromString parses a path parameter into a UUID
func UUIDFromString(s string) (uuid.UUID, error) {
	var u uuid.UUID
	if err := u.UnmarshalParam(s); err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return u, nil
}

// GetBodyFields returns the names of the fields of resource that
// are set in the JSON body of the request.
//
// The body is copied, so this can be called before BindData.
func GetBodyFields(c *gin.Context, resource any) ([]string, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(body) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, ErrInvalidBody
	}

	var bodyFields []string
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param, _, _ := strings.Cut(val.Type().Field(i).Tag.Get("json"), ",")

		if _, ok := mapBody[param]; ok {
			bodyFields = append(bodyFields, field)
		}
	}

	return bodyFields, nil
}
