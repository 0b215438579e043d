package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// тег проверки формата email сотрудника
const EmailTag = "employee_email"

// local-part (в том числе в кавычках) @ домен из меток или IPv4 в квадратных скобках
var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

type Validator struct {
	validate *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve ValidationErrors) Error() string {
	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, ", ")
}

// Primary возвращает ошибку, о которой сообщается клиенту:
// сначала первое незаполненное поле, затем первая ошибка формата
func (ve ValidationErrors) Primary() ValidationError {
	for _, err := range ve.Errors {
		if err.Tag == "required" {
			return err
		}
	}
	if len(ve.Errors) == 0 {
		return ValidationError{}
	}
	return ve.Errors[0]
}

func New() *Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(fieldLabel)
	// регистрация не может упасть: тег и функция заданы статически
	_ = validate.RegisterValidation(EmailTag, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	return &Validator{validate: validate}
}

// IsEmail проверяет адрес в нижнем регистре
func IsEmail(value string) bool {
	return emailPattern.MatchString(strings.ToLower(value))
}

func (v *Validator) Validate(request any) error {
	err := v.validate.Struct(request)
	if err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			return v.formatValidationErrors(validateErrs)
		}
		return err
	}
	return nil
}

func (v *Validator) formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors []ValidationError

	for _, err := range errs {
		validationError := ValidationError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: v.getErrorMessage(err),
		}
		validationErrors = append(validationErrors, validationError)
	}

	return ValidationErrors{Errors: validationErrors}
}

func (v *Validator) getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s can't be empty!", err.Field())
	case EmailTag, "email":
		return "Please input a valid email!"
	case "max":
		return fmt.Sprintf("%s must contain a maximum of %s characters", err.Field(), err.Param())
	case "len":
		return fmt.Sprintf("%s must contain exactly %s characters", err.Field(), err.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only numbers", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("%s contains an incorrect value", err.Field())
	}
}

// имя поля в сообщениях: тег label, затем json, затем имя поля структуры
func fieldLabel(field reflect.StructField) string {
	if label := field.Tag.Get("label"); label != "" {
		return label
	}
	if name, _, _ := strings.Cut(field.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return field.Name
}
