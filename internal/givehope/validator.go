// Пакет для валидации данных запросов GiveHope.  Содержит валидаторы полей, таких как имя документа или кампании.  Использует библиотеку go-playground/validator для выполнения проверок.
//
// Основные возможности:
//   - Валидация полей данных с использованием предопределенных валидаторов.
//   - Настройка валидаторов для конкретных полей.
package givehope

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator"
)

type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	if err := v.RegisterValidation("documentName", documentNameValidator); err != nil {
		return nil
	}
	if err := v.RegisterValidation("campaignName", documentNameValidator); err != nil {
		return nil
	}
	return &RequestValidator{v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	if err := rv.validator.Struct(i); err != nil {
		_, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil
		}
		return err
	}
	return nil
}

func documentNameValidator(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	lenStr := utf8.RuneCountInString(value)
	return lenStr >= 1 && lenStr <= 150
}
