package views

// Kind — вид записи, с которым работает представление.
type Kind string

const (
	KindEquipment Kind = "equipment"
	KindOrder     Kind = "order"
)

// Message — закрытый набор сообщений от представлений к оболочке навигации.
type Message interface {
	message()
}

// RecordViewed — пользователь открыл запись на просмотр.
type RecordViewed struct {
	Kind Kind
	ID   string
}

// RecordEdited — пользователь открыл запись на редактирование.
type RecordEdited struct {
	Kind Kind
	ID   string
}

// NavigateBack — возврат к списку раздела.
type NavigateBack struct {
	Kind Kind
}

// RecordCreated несёт запись, которую вернул сервер после создания.
type RecordCreated struct {
	Kind   Kind
	ID     string
	Record interface{}
}

// RecordUpdated несёт запись, которую вернул сервер после обновления.
type RecordUpdated struct {
	Kind   Kind
	ID     string
	Record interface{}
}

func (RecordViewed) message()  {}
func (RecordEdited) message()  {}
func (NavigateBack) message()  {}
func (RecordCreated) message() {}
func (RecordUpdated) message() {}

// Dispatch доставляет сообщение получателю. nil допустим: сообщение теряется.
type Dispatch func(Message)

func (d Dispatch) send(msg Message) {
	if d != nil {
		d(msg)
	}
}
