package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// strictJSON menolak field yang tidak dikenal di body request.
var strictJSON = sonic.Config{
	DisallowUnknownFields: true,
	ValidateString:        true,
}.Froze()

// NewValidator: validator dengan nama field mengikuti tag json.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseStrict decode body JSON secara ketat (unknown field → error).
func ParseStrict(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return errors.New("request body is empty")
	}
	return strictJSON.Unmarshal(body, out)
}

// BindAndValidate: decode ketat + validasi struct. Response 400 sudah ditulis
// kalau ok=false, caller cukup return err.
func BindAndValidate(c *fiber.Ctx, v *validator.Validate, out any) (ok bool, err error) {
	if err := ParseStrict(c, out); err != nil {
		return false, JsonError(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := v.Struct(out); err != nil {
		return false, ValidationError(c, err)
	}
	return true, nil
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		msg := fieldErr.Tag()
		if p := fieldErr.Param(); p != "" {
			msg += "=" + p
		}
		errorsMap[fieldErr.Field()] = msg
	}
	return JsonValidationError(c, errorsMap)
}
