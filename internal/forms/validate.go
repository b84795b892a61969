package forms

import (
	"strings"
	"time"

	"storage-equipment/pkg/validation"
)

const (
	msgRequired        = "This field is required"
	msgInvalidDate     = "Please provide a valid date"
	msgItemsRequired   = "At least one item is required"
	msgItemName        = "Equipment name is required"
	msgItemQuantity    = "Valid quantity is required"
	msgItemNegativeSum = "Price cannot be negative"
)

// engine — общий экземпляр с зарегистрированными serial_number и calendar_date.
// validator.Validate безопасен для конкурентного использования.
var engine = validation.New().Engine()

func passes(value interface{}, tag string) bool {
	return engine.Var(value, tag) == nil
}

// equipmentRule — одна проверка поля. check возвращает сообщение или "".
type equipmentRule struct {
	field EquipmentField
	check func(d EquipmentFormData, now time.Time) string
}

func required(get func(EquipmentFormData) string) func(EquipmentFormData, time.Time) string {
	return func(d EquipmentFormData, _ time.Time) string {
		if strings.TrimSpace(get(d)) == "" {
			return msgRequired
		}
		return ""
	}
}

// tagged прогоняет непустое значение через тег валидатора. Для пустого
// обязательного поля остаётся «This field is required».
func tagged(get func(EquipmentFormData) string, tag, msg string) func(EquipmentFormData, time.Time) string {
	return func(d EquipmentFormData, _ time.Time) string {
		v := strings.TrimSpace(get(d))
		if v == "" || passes(v, tag) {
			return ""
		}
		return msg
	}
}

func calendarDate(get func(EquipmentFormData) string) func(EquipmentFormData, time.Time) string {
	return func(d EquipmentFormData, _ time.Time) string {
		v := get(d)
		if v == "" || passes(v, "calendar_date") {
			return ""
		}
		return msgInvalidDate
	}
}

var (
	getName         = func(d EquipmentFormData) string { return d.Name }
	getSerial       = func(d EquipmentFormData) string { return d.SerialNumber }
	getManufacturer = func(d EquipmentFormData) string { return d.Manufacturer }
	getModel        = func(d EquipmentFormData) string { return d.Model }
	getLocation     = func(d EquipmentFormData) string { return d.Location }
	getNotes        = func(d EquipmentFormData) string { return d.Notes }
	getInstallation = func(d EquipmentFormData) string { return d.InstallationDate }
	getLastService  = func(d EquipmentFormData) string { return d.LastService }
)

// equipmentRules выполняются строго по порядку; более поздняя ошибка
// по тому же полю заменяет раннюю.
var equipmentRules = []equipmentRule{
	{EquipmentName, required(getName)},
	{EquipmentSerialNumber, required(getSerial)},
	{EquipmentManufacturer, required(getManufacturer)},
	{EquipmentLocation, required(getLocation)},

	{EquipmentName, tagged(getName, "min=3", "Name is too short (minimum 3 characters)")},
	{EquipmentName, tagged(getName, "max=100", "Name is too long (maximum 100 characters)")},

	{EquipmentSerialNumber, tagged(getSerial, "serial_number",
		"Serial number may contain only letters, digits, hyphens and underscores")},
	{EquipmentSerialNumber, tagged(getSerial, "min=3,max=50", "Serial number must be 3 to 50 characters long")},

	{EquipmentManufacturer, tagged(getManufacturer, "min=2,max=50", "Manufacturer must be 2 to 50 characters long")},
	{EquipmentModel, tagged(getModel, "max=50", "Model must be at most 50 characters long")},

	{EquipmentLocation, tagged(getLocation, "min=3,max=100", "Location must be 3 to 100 characters long")},
	{EquipmentNotes, tagged(getNotes, "max=1000", "Notes must be at most 1000 characters long")},

	{EquipmentInstallationDate, calendarDate(getInstallation)},
	{EquipmentLastService, calendarDate(getLastService)},
	{EquipmentInstallationDate, installationBounds},

	{EquipmentServiceInterval, intRange(func(d EquipmentFormData) (int, bool) {
		return d.ServiceInterval.Int, d.ServiceInterval.Valid
	}, "min=1,max=3650", "Service interval must be between 1 and 3650 days")},
	{EquipmentLifeExpectancy, intRange(func(d EquipmentFormData) (int, bool) {
		return d.LifeExpectancy.Int, d.LifeExpectancy.Valid
	}, "min=1,max=100", "Life expectancy must be between 1 and 100 years")},

	{EquipmentServiceInterval, serviceWithinLifetime},
	{EquipmentStatusField, statusKnown},
}

// installationBounds: не дальше года вперёд и не глубже 50 лет назад.
// Проверяется только разобранная дата.
func installationBounds(d EquipmentFormData, now time.Time) string {
	if d.InstallationDate == "" || !validation.IsCalendarDate(d.InstallationDate) {
		return ""
	}
	date, err := ParseInputDate(d.InstallationDate)
	if err != nil {
		return ""
	}
	today := truncateToDate(now)
	if date.After(today.AddDate(1, 0, 0)) {
		return "Installation date cannot be more than 1 year in the future"
	}
	if date.Before(today.AddDate(-50, 0, 0)) {
		return "Installation date cannot be more than 50 years in the past"
	}
	return ""
}

func intRange(get func(EquipmentFormData) (int, bool), tag, msg string) func(EquipmentFormData, time.Time) string {
	return func(d EquipmentFormData, _ time.Time) string {
		v, ok := get(d)
		if !ok || passes(v, tag) {
			return ""
		}
		return msg
	}
}

// serviceWithinLifetime сравнивает интервал обслуживания со сроком службы в днях.
// Срабатывает, только когда оба значения заданы и больше нуля.
func serviceWithinLifetime(d EquipmentFormData, _ time.Time) string {
	if !d.ServiceInterval.Valid || !d.LifeExpectancy.Valid {
		return ""
	}
	interval, life := d.ServiceInterval.Int, d.LifeExpectancy.Int
	if interval <= 0 || life <= 0 {
		return ""
	}
	if interval > life*365 {
		return "Service interval cannot exceed life expectancy"
	}
	return ""
}

func statusKnown(d EquipmentFormData, _ time.Time) string {
	if d.Status == "" || d.Status.Valid() {
		return ""
	}
	return "Please select a valid status"
}

// ValidateEquipment проверяет форму оборудования. now задаёт «сегодня»
// для границ даты установки. Пустой результат — форма валидна.
func ValidateEquipment(data EquipmentFormData, now time.Time) EquipmentErrors {
	errs := EquipmentErrors{}
	for _, rule := range equipmentRules {
		if msg := rule.check(data, now); msg != "" {
			errs[rule.field] = msg
		}
	}
	return errs
}

// ValidateOrder проверяет форму заказа: заголовок и каждую позицию.
func ValidateOrder(data OrderFormData) OrderErrors {
	errs := newOrderErrors()
	if strings.TrimSpace(data.RequestedBy) == "" {
		errs.Fields[OrderRequestedBy] = msgRequired
	}
	if data.Status != "" && !data.Status.Valid() {
		errs.Fields[OrderStatusField] = "Please select a valid status"
	}
	if len(data.Items) == 0 {
		errs.Fields[OrderItems] = msgItemsRequired
		return errs
	}
	for i, item := range data.Items {
		if strings.TrimSpace(item.EquipmentName) == "" {
			errs.setItem(i, ItemEquipmentName, msgItemName)
		}
		if !passes(item.Quantity, "gt=0") {
			errs.setItem(i, ItemQuantity, msgItemQuantity)
		}
		if item.UnitPrice.IsNegative() {
			errs.setItem(i, ItemUnitPrice, msgItemNegativeSum)
		}
	}
	return errs
}
