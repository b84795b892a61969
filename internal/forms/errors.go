package forms

import "fmt"

type EquipmentField int

const (
	EquipmentName EquipmentField = iota
	EquipmentSerialNumber
	EquipmentManufacturer
	EquipmentModel
	EquipmentLocation
	EquipmentNotes
	EquipmentInstallationDate
	EquipmentLastService
	EquipmentServiceInterval
	EquipmentLifeExpectancy
	EquipmentStatusField
)

var equipmentFieldKeys = [...]string{
	EquipmentName:             "name",
	EquipmentSerialNumber:     "serialNumber",
	EquipmentManufacturer:     "manufacturer",
	EquipmentModel:            "model",
	EquipmentLocation:         "location",
	EquipmentNotes:            "notes",
	EquipmentInstallationDate: "installationDate",
	EquipmentLastService:      "lastService",
	EquipmentServiceInterval:  "serviceInterval",
	EquipmentLifeExpectancy:   "lifeExpectancy",
	EquipmentStatusField:      "status",
}

// EquipmentFields — все поля формы оборудования в порядке вывода.
var EquipmentFields = []EquipmentField{
	EquipmentName, EquipmentSerialNumber, EquipmentManufacturer, EquipmentModel,
	EquipmentLocation, EquipmentInstallationDate, EquipmentServiceInterval,
	EquipmentLastService, EquipmentLifeExpectancy, EquipmentStatusField, EquipmentNotes,
}

// String возвращает имя поля так, как оно называется в JSON и в HTML-форме.
func (f EquipmentField) String() string {
	if int(f) < 0 || int(f) >= len(equipmentFieldKeys) {
		return fmt.Sprintf("EquipmentField(%d)", int(f))
	}
	return equipmentFieldKeys[f]
}

func ParseEquipmentField(key string) (EquipmentField, bool) {
	for i, k := range equipmentFieldKeys {
		if k == key {
			return EquipmentField(i), true
		}
	}
	return 0, false
}

// EquipmentErrors — ошибки формы оборудования по полям. Пустая карта = форма валидна.
type EquipmentErrors map[EquipmentField]string

func (e EquipmentErrors) Empty() bool { return len(e) == 0 }

func (e EquipmentErrors) Get(f EquipmentField) string { return e[f] }

// Clear снимает ошибку поля: пользователь начал его править.
func (e EquipmentErrors) Clear(f EquipmentField) { delete(e, f) }

// Flatten отдаёт ошибки с ключами-именами полей для шаблонов и JSON.
func (e EquipmentErrors) Flatten() map[string]string {
	out := make(map[string]string, len(e))
	for f, msg := range e {
		out[f.String()] = msg
	}
	return out
}

type OrderField int

const (
	OrderRequestedBy OrderField = iota
	OrderRequestorDepartment
	OrderStatusField
	OrderNotes
	OrderItems
)

var orderFieldKeys = [...]string{
	OrderRequestedBy:         "requestedBy",
	OrderRequestorDepartment: "requestorDepartment",
	OrderStatusField:         "status",
	OrderNotes:               "notes",
	OrderItems:               "items",
}

func (f OrderField) String() string {
	if int(f) < 0 || int(f) >= len(orderFieldKeys) {
		return fmt.Sprintf("OrderField(%d)", int(f))
	}
	return orderFieldKeys[f]
}

func ParseOrderField(key string) (OrderField, bool) {
	for i, k := range orderFieldKeys {
		if k == key {
			return OrderField(i), true
		}
	}
	return 0, false
}

type ItemField int

const (
	ItemEquipmentName ItemField = iota
	ItemQuantity
	ItemUnitPrice
)

var itemFieldKeys = [...]string{
	ItemEquipmentName: "equipmentName",
	ItemQuantity:      "quantity",
	ItemUnitPrice:     "unitPrice",
}

func (f ItemField) String() string {
	if int(f) < 0 || int(f) >= len(itemFieldKeys) {
		return fmt.Sprintf("ItemField(%d)", int(f))
	}
	return itemFieldKeys[f]
}

func ParseItemField(key string) (ItemField, bool) {
	for i, k := range itemFieldKeys {
		if k == key {
			return ItemField(i), true
		}
	}
	return 0, false
}

// ItemKey — составной ключ ошибки позиции: items[2].quantity.
func ItemKey(index int, f ItemField) string {
	return fmt.Sprintf("items[%d].%s", index, f)
}

type ItemErrors map[ItemField]string

// OrderErrors — ошибки верхнего уровня плюс ошибки позиций по индексу.
type OrderErrors struct {
	Fields map[OrderField]string
	Items  map[int]ItemErrors
}

func newOrderErrors() OrderErrors {
	return OrderErrors{Fields: map[OrderField]string{}, Items: map[int]ItemErrors{}}
}

func (e OrderErrors) Empty() bool {
	return len(e.Fields) == 0 && len(e.Items) == 0
}

func (e OrderErrors) Get(f OrderField) string { return e.Fields[f] }

func (e OrderErrors) Item(index int, f ItemField) string {
	return e.Items[index][f]
}

func (e *OrderErrors) setItem(index int, f ItemField, msg string) {
	if e.Items == nil {
		e.Items = map[int]ItemErrors{}
	}
	if e.Items[index] == nil {
		e.Items[index] = ItemErrors{}
	}
	e.Items[index][f] = msg
}

// Clear снимает ошибку поля: пользователь начал его править.
func (e *OrderErrors) Clear(f OrderField) {
	delete(e.Fields, f)
}

func (e *OrderErrors) ClearItem(index int, f ItemField) {
	if errs, ok := e.Items[index]; ok {
		delete(errs, f)
		if len(errs) == 0 {
			delete(e.Items, index)
		}
	}
}

// ShiftItems сдвигает ошибки позиций после удаления строки index,
// чтобы они остались у тех же строк.
func (e *OrderErrors) ShiftItems(index int) {
	if len(e.Items) == 0 {
		return
	}
	shifted := make(map[int]ItemErrors, len(e.Items))
	for i, errs := range e.Items {
		switch {
		case i < index:
			shifted[i] = errs
		case i > index:
			shifted[i-1] = errs
		}
	}
	e.Items = shifted
}

func (e OrderErrors) Flatten() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for f, msg := range e.Fields {
		out[f.String()] = msg
	}
	for index, errs := range e.Items {
		for f, msg := range errs {
			out[ItemKey(index, f)] = msg
		}
	}
	return out
}
