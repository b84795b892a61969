package forms

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"storage-equipment/internal/dto"
)

// OrderItemData — позиция заказа в форме. TotalPrice всегда производная величина.
type OrderItemData struct {
	EquipmentName string
	Quantity      int
	UnitPrice     dto.Money
	TotalPrice    dto.Money
}

func (i *OrderItemData) recompute() {
	i.TotalPrice = i.UnitPrice.Times(i.Quantity)
}

type OrderFormData struct {
	RequestedBy         string
	RequestorDepartment string
	Status              dto.OrderStatus
	Notes               string
	Items               []OrderItemData
}

func NewOrderFormData() OrderFormData {
	return OrderFormData{Status: dto.OrderStatuses[0]}
}

// OrderFormFromRecord заполняет форму из заказа; totalPrice пересчитывается.
func OrderFormFromRecord(rec dto.OrderDTO) OrderFormData {
	data := OrderFormData{
		RequestedBy:         rec.RequestedBy,
		RequestorDepartment: rec.RequestorDepartment,
		Status:              rec.Status,
		Notes:               rec.Notes,
		Items:               make([]OrderItemData, 0, len(rec.Items)),
	}
	for _, item := range rec.Items {
		row := OrderItemData{EquipmentName: item.EquipmentName, Quantity: item.Quantity, UnitPrice: item.UnitPrice}
		row.recompute()
		data.Items = append(data.Items, row)
	}
	if data.Status == "" {
		data.Status = dto.OrderStatuses[0]
	}
	return data
}

func (d *OrderFormData) Set(field OrderField, raw string) {
	switch field {
	case OrderRequestedBy:
		d.RequestedBy = raw
	case OrderRequestorDepartment:
		d.RequestorDepartment = raw
	case OrderStatusField:
		d.Status = dto.OrderStatus(raw)
	case OrderNotes:
		d.Notes = raw
	}
}

func (d OrderFormData) Value(field OrderField) string {
	switch field {
	case OrderRequestedBy:
		return d.RequestedBy
	case OrderRequestorDepartment:
		return d.RequestorDepartment
	case OrderStatusField:
		return string(d.Status)
	case OrderNotes:
		return d.Notes
	}
	return ""
}

// AddItem добавляет пустую позицию: количество 1, цена 0.
func (d *OrderFormData) AddItem() int {
	d.Items = append(d.Items, OrderItemData{Quantity: 1})
	return len(d.Items) - 1
}

func (d *OrderFormData) RemoveItem(index int) bool {
	if index < 0 || index >= len(d.Items) {
		return false
	}
	d.Items = append(d.Items[:index:index], d.Items[index+1:]...)
	return true
}

func (d *OrderFormData) SetEquipmentName(index int, name string) bool {
	if index < 0 || index >= len(d.Items) {
		return false
	}
	d.Items[index].EquipmentName = name
	return true
}

// SetQuantity сразу пересчитывает totalPrice позиции.
func (d *OrderFormData) SetQuantity(index, quantity int) bool {
	if index < 0 || index >= len(d.Items) {
		return false
	}
	d.Items[index].Quantity = quantity
	d.Items[index].recompute()
	return true
}

// SetUnitPrice сразу пересчитывает totalPrice позиции.
func (d *OrderFormData) SetUnitPrice(index int, price dto.Money) bool {
	if index < 0 || index >= len(d.Items) {
		return false
	}
	d.Items[index].UnitPrice = price
	d.Items[index].recompute()
	return true
}

// SetItem применяет ввод пользователя к полю позиции. Нечисловой ввод даёт 0,
// как parseInt(...) || 0 в поле типа number.
func (d *OrderFormData) SetItem(index int, field ItemField, raw string) bool {
	switch field {
	case ItemEquipmentName:
		return d.SetEquipmentName(index, raw)
	case ItemQuantity:
		q, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			q = 0
		}
		return d.SetQuantity(index, q)
	case ItemUnitPrice:
		price, err := dto.ParseMoney(strings.TrimSpace(raw))
		if err != nil {
			price = dto.Money{}
		}
		return d.SetUnitPrice(index, price)
	}
	return false
}

// Total — стоимость заказа: сумма позиций в порядке списка.
func (d OrderFormData) Total() dto.Money {
	total := dto.Money{}
	for _, item := range d.Items {
		total = total.Plus(item.TotalPrice)
	}
	return total
}

var itemKeyRe = regexp.MustCompile(`^items\[(\d+)\]\.(\w+)$`)

// BindOrder собирает форму заказа из значений HTML-формы. Позиции передаются
// ключами items[i].equipmentName / items[i].quantity / items[i].unitPrice;
// набор позиций в запросе заменяет позиции base целиком.
func BindOrder(base OrderFormData, values url.Values) OrderFormData {
	for _, field := range []OrderField{OrderRequestedBy, OrderRequestorDepartment, OrderStatusField, OrderNotes} {
		if _, ok := values[field.String()]; ok {
			base.Set(field, values.Get(field.String()))
		}
	}

	var cells []itemCell
	position := map[int]int{}
	for key := range values {
		m := itemKeyRe.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		field, ok := ParseItemField(m[2])
		if !ok {
			continue
		}
		cells = append(cells, itemCell{index: index, field: field, raw: values.Get(key)})
		position[index] = 0
	}
	if len(cells) == 0 {
		return base
	}

	// Номер из формы задаёт только порядок: пропуски (удалённые строки)
	// схлопываются, размер списка равен числу разных номеров.
	indexes := make([]int, 0, len(position))
	for index := range position {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)
	for pos, index := range indexes {
		position[index] = pos
	}

	sort.Slice(cells, func(a, b int) bool {
		if cells[a].index != cells[b].index {
			return cells[a].index < cells[b].index
		}
		return cells[a].field < cells[b].field
	})
	base.Items = make([]OrderItemData, len(indexes))
	for _, c := range cells {
		base.SetItem(position[c.index], c.field, c.raw)
	}
	return base
}

type itemCell struct {
	index int
	field ItemField
	raw   string
}

// Payload превращает форму в тело запроса; totalPrice пересчитывается ещё раз.
func (d OrderFormData) Payload() dto.OrderPayload {
	p := dto.OrderPayload{
		RequestedBy:         strings.TrimSpace(d.RequestedBy),
		RequestorDepartment: strings.TrimSpace(d.RequestorDepartment),
		Status:              d.Status,
		Notes:               d.Notes,
		Items:               make([]dto.OrderItemPayload, 0, len(d.Items)),
	}
	for _, item := range d.Items {
		item.recompute()
		p.Items = append(p.Items, dto.OrderItemPayload{
			EquipmentName: strings.TrimSpace(item.EquipmentName),
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    item.TotalPrice,
		})
	}
	return p
}
