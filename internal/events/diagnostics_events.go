package events

// Aggregate — вид записи, к которой относится событие.
type Aggregate string

const (
	AggregateEquipment Aggregate = "equipment"
	AggregateOrder     Aggregate = "order"
)

const (
	LoadFailedName         = "diagnostics.load.failed"
	ActionFailedName       = "diagnostics.action.failed"
	ValidationRejectedName = "diagnostics.validation.rejected"
)

// LoadFailedEvent — не удалось загрузить список или запись.
// Пользователь видит своё сообщение, событие уходит в журнал.
type LoadFailedEvent struct {
	Aggregate Aggregate
	ID        string
	Err       error
}

func (e LoadFailedEvent) Name() string { return LoadFailedName }

// ActionFailedEvent — не удалось сохранить или удалить запись.
type ActionFailedEvent struct {
	Aggregate Aggregate
	Action    string
	ID        string
	Err       error
}

func (e ActionFailedEvent) Name() string { return ActionFailedName }

// ValidationRejectedEvent — форма не прошла проверку, запрос не отправлялся.
type ValidationRejectedEvent struct {
	Aggregate Aggregate
	Fields    []string
}

func (e ValidationRejectedEvent) Name() string { return ValidationRejectedName }
