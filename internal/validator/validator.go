package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"courier_oms/internal/model"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// FieldError - ошибка валидации одного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError содержит ошибки по полям. Записи в хранилище при ней не выполняются.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "ошибка валидации: " + strings.Join(parts, "; ")
}

// NewError создает ValidationError для одного поля.
func NewError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// getInstance возвращает синглтон-экземпляр валидатора.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// В ошибках используем имена полей из JSON
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation("region", func(fl validator.FieldLevel) bool {
			return model.Region(fl.Field().String()).Valid()
		})
	})
	return validate
}

// ValidateStruct выполняет валидацию по тегам структуры.
// Ошибки тегов возвращаются как *ValidationError.
func ValidateStruct(s interface{}) error {
	err := getInstance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "email":
		return "некорректный email"
	case "uuid":
		return "ожидается UUID"
	case "oneof":
		return fmt.Sprintf("допустимые значения: %s", fe.Param())
	case "region":
		return "неизвестная зона доставки"
	case "min":
		return fmt.Sprintf("минимальная длина %s", fe.Param())
	case "max":
		return fmt.Sprintf("максимальная длина %s", fe.Param())
	default:
		return fmt.Sprintf("не прошло проверку %q", fe.Tag())
	}
}
