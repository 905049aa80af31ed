package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации. Максимумы соответствуют колонкам в базе.
const (
	MaxContentLength     = 10000
	MaxReasonLength      = 255
	MaxExternalIDLength  = 100
	MaxReportedByLength  = 255
	MaxTriggerWordLength = 100
	MaxCategoryLength    = 100
)

// ValidateLength проверяет длину строки в рунах.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("некорректный формат email")
	}
	return nil
}

// ValidateExternalID проверяет непрозрачный идентификатор внешнего
// документа (post_id/comment_id/reply_id). Пустое значение пропускается:
// обязательность полей проверяется отдельно по parent_type.
func ValidateExternalID(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if err := ValidateLength(fieldName, value, 1, MaxExternalIDLength); err != nil {
		return err
	}
	// Идентификатор попадает в путь документа, слэши сломали бы иерархию.
	if strings.ContainsAny(value, "/.#$[]") {
		return fmt.Errorf("%s содержит недопустимые символы", fieldName)
	}
	return nil
}
