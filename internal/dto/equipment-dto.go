package dto

type EquipmentStatus string

const (
	EquipmentOperational    EquipmentStatus = "operational"
	EquipmentInRepair       EquipmentStatus = "in_repair"
	EquipmentFaulty         EquipmentStatus = "faulty"
	EquipmentDecommissioned EquipmentStatus = "decommissioned"
)

// EquipmentStatuses в порядке вывода; первый — безопасное значение по умолчанию.
var EquipmentStatuses = []EquipmentStatus{
	EquipmentOperational,
	EquipmentInRepair,
	EquipmentFaulty,
	EquipmentDecommissioned,
}

func (s EquipmentStatus) Valid() bool {
	for _, known := range EquipmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// EquipmentDTO — запись оборудования в том виде, в каком её отдаёт бэкенд.
// Даты приходят строками ISO-8601.
type EquipmentDTO struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SerialNumber     string          `json:"serialNumber"`
	Manufacturer     string          `json:"manufacturer"`
	Model            string          `json:"model,omitempty"`
	InstallationDate string          `json:"installationDate,omitempty"`
	Location         string          `json:"location,omitempty"`
	ServiceInterval  int             `json:"serviceInterval,omitempty"`
	LastService      string          `json:"lastService,omitempty"`
	NextService      string          `json:"nextService,omitempty"`
	LifeExpectancy   int             `json:"lifeExpectancy,omitempty"`
	Status           EquipmentStatus `json:"status"`
	Notes            string          `json:"notes,omitempty"`
}

// EquipmentPayload — тело POST/PUT. nextService сервер считает сам.
type EquipmentPayload struct {
	Name             string          `json:"name"                       validate:"required,min=3,max=100"`
	SerialNumber     string          `json:"serialNumber"               validate:"required,min=3,max=50,serial_number"`
	Manufacturer     string          `json:"manufacturer"               validate:"required,min=2,max=50"`
	Model            string          `json:"model,omitempty"            validate:"omitempty,max=50"`
	InstallationDate string          `json:"installationDate,omitempty" validate:"omitempty,calendar_date"`
	Location         string          `json:"location"                   validate:"required,min=3,max=100"`
	ServiceInterval  *int            `json:"serviceInterval,omitempty"  validate:"omitempty,min=1,max=3650"`
	LastService      string          `json:"lastService,omitempty"      validate:"omitempty,calendar_date"`
	LifeExpectancy   *int            `json:"lifeExpectancy,omitempty"   validate:"omitempty,min=1,max=100"`
	Status           EquipmentStatus `json:"status"                     validate:"omitempty,oneof=operational in_repair faulty decommissioned"`
	Notes            string          `json:"notes,omitempty"            validate:"omitempty,max=1000"`
}
