package forms

import (
	"net/url"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"storage-equipment/internal/dto"
)

func TestNewEquipmentFormData_Defaults(t *testing.T) {
	d := NewEquipmentFormData(fixedNow)

	assert.Equal(t, "2025-06-15", d.InstallationDate)
	assert.Equal(t, "2025-06-15", d.LastService)
	assert.Equal(t, null.IntFrom(DefaultServiceInterval), d.ServiceInterval)
	assert.Equal(t, null.IntFrom(DefaultLifeExpectancy), d.LifeExpectancy)
	assert.Equal(t, dto.EquipmentOperational, d.Status)
}

func TestEquipmentFormFromRecord_DateRoundTrip(t *testing.T) {
	rec := dto.EquipmentDTO{
		ID:               "eq-1",
		Name:             "MRI",
		InstallationDate: "2024-03-10T00:00:00Z",
		LastService:      "2024-03-10",
		ServiceInterval:  180,
	}

	d := EquipmentFormFromRecord(rec)
	assert.Equal(t, "2024-03-10", d.InstallationDate)
	assert.Equal(t, "2024-03-10", d.LastService)
	assert.Equal(t, null.IntFrom(180), d.ServiceInterval)
	assert.False(t, d.LifeExpectancy.Valid)

	parsed, err := ParseInputDate(d.InstallationDate)
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-10T00:00:00Z", parsed.Format("2006-01-02T15:04:05Z07:00"))
}

func TestFormatDateForInput(t *testing.T) {
	assert.Equal(t, "2024-03-10", FormatDateForInput("2024-03-10"))
	assert.Equal(t, "2024-03-11", FormatDateForInput("2024-03-10T23:30:00-02:00"))
	assert.Equal(t, "", FormatDateForInput("not a date"))
	assert.Equal(t, "", FormatDateForInput(""))
}

func TestBindEquipment(t *testing.T) {
	base := NewEquipmentFormData(fixedNow)
	values := url.Values{
		"name":            {"Defibrillator"},
		"serviceInterval": {""},
		"lifeExpectancy":  {"abc"},
	}

	d := BindEquipment(base, values)
	assert.Equal(t, "Defibrillator", d.Name)
	assert.False(t, d.ServiceInterval.Valid)
	assert.Equal(t, null.IntFrom(0), d.LifeExpectancy)
	assert.Equal(t, base.InstallationDate, d.InstallationDate)

	p := d.Payload()
	assert.Nil(t, p.ServiceInterval)
	if assert.NotNil(t, p.LifeExpectancy) {
		assert.Equal(t, 0, *p.LifeExpectancy)
	}
}
