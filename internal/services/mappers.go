package services

import (
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/entities"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/validation"
)

// Даты в ответах — ISO-8601 в UTC: 2024-03-10T00:00:00Z.
func formatDate(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.UTC().Format(time.RFC3339)
}

func parseDate(field, value string) (null.Time, error) {
	if value == "" {
		return null.Time{}, nil
	}
	t, err := time.ParseInLocation(validation.DateLayout, value, time.UTC)
	if err != nil {
		return null.Time{}, apperrors.NewInvalidInputError("%s: expected YYYY-MM-DD", field)
	}
	return null.TimeFrom(t), nil
}

func optionalString(s string) null.String {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

func optionalInt(v *int) null.Int {
	if v == nil {
		return null.Int{}
	}
	return null.IntFrom(*v)
}

// parseID: строка, которая не является UUID, не может быть id записи.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.ErrNotFound
	}
	return parsed, nil
}

func equipmentToDTO(e entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:               e.ID.String(),
		Name:             e.Name,
		SerialNumber:     e.SerialNumber,
		Manufacturer:     e.Manufacturer,
		Model:            e.Model.String,
		InstallationDate: formatDate(e.InstallationDate),
		Location:         e.Location,
		ServiceInterval:  e.ServiceInterval.Int,
		LastService:      formatDate(e.LastService),
		NextService:      formatDate(e.NextService),
		LifeExpectancy:   e.LifeExpectancy.Int,
		Status:           dto.EquipmentStatus(e.Status),
		Notes:            e.Notes.String,
	}
}

func equipmentFromPayload(id uuid.UUID, p dto.EquipmentPayload) (entities.Equipment, error) {
	e := entities.Equipment{
		ID:              id,
		Name:            strings.TrimSpace(p.Name),
		SerialNumber:    strings.TrimSpace(p.SerialNumber),
		Manufacturer:    strings.TrimSpace(p.Manufacturer),
		Model:           optionalString(p.Model),
		Location:        strings.TrimSpace(p.Location),
		ServiceInterval: optionalInt(p.ServiceInterval),
		LifeExpectancy:  optionalInt(p.LifeExpectancy),
		Status:          string(p.Status),
		Notes:           optionalString(p.Notes),
	}
	if e.Status == "" {
		e.Status = string(dto.EquipmentStatuses[0])
	}

	var err error
	if e.InstallationDate, err = parseDate("installationDate", p.InstallationDate); err != nil {
		return e, err
	}
	if e.LastService, err = parseDate("lastService", p.LastService); err != nil {
		return e, err
	}

	if e.ServiceInterval.Valid && e.LifeExpectancy.Valid &&
		e.ServiceInterval.Int > 0 && e.LifeExpectancy.Int > 0 &&
		e.ServiceInterval.Int > e.LifeExpectancy.Int*365 {
		return e, apperrors.NewInvalidInputError("serviceInterval cannot exceed lifeExpectancy")
	}

	e.ComputeNextService()
	return e, nil
}

func orderToDTO(o entities.Order) dto.OrderDTO {
	out := dto.OrderDTO{
		ID:                  o.ID.String(),
		RequestedBy:         o.RequestedBy,
		RequestorDepartment: o.RequestorDepartment.String,
		Status:              dto.OrderStatus(o.Status),
		Notes:               o.Notes.String,
		CreatedAt:           o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:           o.UpdatedAt.UTC().Format(time.RFC3339),
		Items:               make([]dto.OrderItemDTO, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		out.Items = append(out.Items, dto.OrderItemDTO{
			EquipmentName: item.EquipmentName,
			Quantity:      item.Quantity,
			UnitPrice:     dto.Money{Decimal: item.UnitPrice},
			TotalPrice:    dto.Money{Decimal: item.TotalPrice()},
		})
	}
	return out
}

// itemsFromPayload: присланный totalPrice игнорируется, хранится только цена за единицу.
func itemsFromPayload(items []dto.OrderItemPayload) ([]entities.OrderItem, error) {
	out := make([]entities.OrderItem, 0, len(items))
	for i, item := range items {
		if item.UnitPrice.IsNegative() {
			return nil, apperrors.NewInvalidInputError("items[%d].unitPrice: price cannot be negative", i)
		}
		out = append(out, entities.OrderItem{
			Position:      i,
			EquipmentName: strings.TrimSpace(item.EquipmentName),
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice.Decimal,
		})
	}
	return out, nil
}
