package events

const (
	EquipmentChangedName = "equipment.changed"
	OrderChangedName     = "order.changed"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EquipmentChangedEvent публикуется бэкендом после успешной записи в БД.
type EquipmentChangedEvent struct {
	ID     string
	Action string
}

func (e EquipmentChangedEvent) Name() string { return EquipmentChangedName }

type OrderChangedEvent struct {
	ID     string
	Action string
	Status string
}

func (e OrderChangedEvent) Name() string { return OrderChangedName }
