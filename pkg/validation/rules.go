package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var (
	serialNumberRe = regexp.MustCompile(`^[A-Za-z0-9\-_]+$`)
	dateShapeRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// registerRules регистрирует теги, которые мы используем в struct tags и в Var
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("serial_number", isSerialNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("calendar_date", isCalendarDate); err != nil {
		return err
	}
	return nil
}

func isSerialNumber(fl validator.FieldLevel) bool {
	return serialNumberRe.MatchString(fl.Field().String())
}

func isCalendarDate(fl validator.FieldLevel) bool {
	return IsCalendarDate(fl.Field().String())
}

// IsCalendarDate принимает только YYYY-MM-DD, где год/месяц/день совпадают с введёнными
// цифрами: 2024-02-30 отклоняется, а не «перетекает» в март.
func IsCalendarDate(s string) bool {
	if !dateShapeRe.MatchString(s) {
		return false
	}
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return parsed.Format(DateLayout) == s
}
