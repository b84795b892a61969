package forms

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"

	"storage-equipment/internal/dto"
)

const (
	DefaultServiceInterval = 90
	DefaultLifeExpectancy  = 10
)

// EquipmentFormData — состояние формы оборудования. Необязательные числовые поля
// хранятся как null.Int: Valid=false означает «не заполнено».
type EquipmentFormData struct {
	Name             string
	SerialNumber     string
	Manufacturer     string
	Model            string
	InstallationDate string
	Location         string
	ServiceInterval  null.Int
	LastService      string
	LifeExpectancy   null.Int
	Status           dto.EquipmentStatus
	Notes            string
}

// NewEquipmentFormData — значения по умолчанию для новой записи.
func NewEquipmentFormData(now time.Time) EquipmentFormData {
	today := Today(now)
	return EquipmentFormData{
		InstallationDate: today,
		ServiceInterval:  null.IntFrom(DefaultServiceInterval),
		LastService:      today,
		LifeExpectancy:   null.IntFrom(DefaultLifeExpectancy),
		Status:           dto.EquipmentStatuses[0],
	}
}

// EquipmentFormFromRecord заполняет форму из существующей записи; даты переводятся в YYYY-MM-DD.
func EquipmentFormFromRecord(rec dto.EquipmentDTO) EquipmentFormData {
	data := EquipmentFormData{
		Name:             rec.Name,
		SerialNumber:     rec.SerialNumber,
		Manufacturer:     rec.Manufacturer,
		Model:            rec.Model,
		InstallationDate: FormatDateForInput(rec.InstallationDate),
		Location:         rec.Location,
		LastService:      FormatDateForInput(rec.LastService),
		Status:           rec.Status,
		Notes:            rec.Notes,
	}
	if rec.ServiceInterval != 0 {
		data.ServiceInterval = null.IntFrom(rec.ServiceInterval)
	}
	if rec.LifeExpectancy != 0 {
		data.LifeExpectancy = null.IntFrom(rec.LifeExpectancy)
	}
	if data.Status == "" {
		data.Status = dto.EquipmentStatuses[0]
	}
	return data
}

// Set применяет ввод пользователя к одному полю. Число, которое не удалось разобрать,
// сохраняется как 0: поле заполнено, и проверка диапазона сообщит об ошибке.
func (d *EquipmentFormData) Set(field EquipmentField, raw string) {
	switch field {
	case EquipmentName:
		d.Name = raw
	case EquipmentSerialNumber:
		d.SerialNumber = raw
	case EquipmentManufacturer:
		d.Manufacturer = raw
	case EquipmentModel:
		d.Model = raw
	case EquipmentLocation:
		d.Location = raw
	case EquipmentNotes:
		d.Notes = raw
	case EquipmentInstallationDate:
		d.InstallationDate = strings.TrimSpace(raw)
	case EquipmentLastService:
		d.LastService = strings.TrimSpace(raw)
	case EquipmentServiceInterval:
		d.ServiceInterval = parseOptionalInt(raw)
	case EquipmentLifeExpectancy:
		d.LifeExpectancy = parseOptionalInt(raw)
	case EquipmentStatusField:
		d.Status = dto.EquipmentStatus(raw)
	}
}

// Value — текущее значение поля в виде строки для повторного вывода в форму.
func (d EquipmentFormData) Value(field EquipmentField) string {
	switch field {
	case EquipmentName:
		return d.Name
	case EquipmentSerialNumber:
		return d.SerialNumber
	case EquipmentManufacturer:
		return d.Manufacturer
	case EquipmentModel:
		return d.Model
	case EquipmentLocation:
		return d.Location
	case EquipmentNotes:
		return d.Notes
	case EquipmentInstallationDate:
		return d.InstallationDate
	case EquipmentLastService:
		return d.LastService
	case EquipmentServiceInterval:
		return formatOptionalInt(d.ServiceInterval)
	case EquipmentLifeExpectancy:
		return formatOptionalInt(d.LifeExpectancy)
	case EquipmentStatusField:
		return string(d.Status)
	}
	return ""
}

// BindEquipment собирает форму из отправленных значений HTML-формы.
// Отсутствующие в запросе поля берутся из base.
func BindEquipment(base EquipmentFormData, values url.Values) EquipmentFormData {
	for _, field := range EquipmentFields {
		if _, ok := values[field.String()]; ok {
			base.Set(field, values.Get(field.String()))
		}
	}
	return base
}

// Payload превращает форму в тело запроса.
func (d EquipmentFormData) Payload() dto.EquipmentPayload {
	p := dto.EquipmentPayload{
		Name:             strings.TrimSpace(d.Name),
		SerialNumber:     strings.TrimSpace(d.SerialNumber),
		Manufacturer:     strings.TrimSpace(d.Manufacturer),
		Model:            strings.TrimSpace(d.Model),
		InstallationDate: d.InstallationDate,
		Location:         strings.TrimSpace(d.Location),
		LastService:      d.LastService,
		Status:           d.Status,
		Notes:            d.Notes,
	}
	if d.ServiceInterval.Valid {
		v := d.ServiceInterval.Int
		p.ServiceInterval = &v
	}
	if d.LifeExpectancy.Valid {
		v := d.LifeExpectancy.Int
		p.LifeExpectancy = &v
	}
	return p
}

func parseOptionalInt(raw string) null.Int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return null.Int{}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return null.IntFrom(0)
	}
	return null.IntFrom(n)
}

func formatOptionalInt(v null.Int) string {
	if !v.Valid {
		return ""
	}
	return strconv.Itoa(v.Int)
}
