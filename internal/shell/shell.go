package shell

import (
	"net/url"
	"strings"

	"storage-equipment/internal/views"
)

type Section string

const (
	SectionEquipment Section = "equipment"
	SectionOrders    Section = "orders"
)

type Mode string

const (
	ModeList   Mode = "list"
	ModeDetail Mode = "detail"
)

// History — куда оболочка записывает новый адрес. Консоль отвечает редиректом.
type History interface {
	Push(url string)
}

// Shell хранит активный раздел, режим и выбранные записи.
type Shell struct {
	BasePath    string
	Section     Section
	Mode        Mode
	EquipmentID string
	OrderID     string
	Edit        bool
}

func New(basePath string) *Shell {
	return &Shell{
		BasePath: strings.TrimSuffix(basePath, "/"),
		Section:  SectionEquipment,
		Mode:     ModeList,
	}
}

// Parse восстанавливает состояние из пути и строки запроса. Понимает
// /equipment/{id}, /orders/{id} и старые ?equipmentId= / ?orderID=.
// Всё остальное открывает список оборудования.
func (s *Shell) Parse(path string, query url.Values) {
	s.Section, s.Mode = SectionEquipment, ModeList
	s.EquipmentID, s.OrderID, s.Edit = "", "", false

	rel := path
	if s.BasePath != "" {
		switch {
		case rel == s.BasePath:
			rel = ""
		case strings.HasPrefix(rel, s.BasePath+"/"):
			rel = strings.TrimPrefix(rel, s.BasePath)
		default:
			rel = ""
		}
	}
	parts := strings.FieldsFunc(rel, func(r rune) bool { return r == '/' })

	if len(parts) > 0 {
		switch parts[0] {
		case string(SectionEquipment):
			s.Section = SectionEquipment
		case string(SectionOrders):
			s.Section = SectionOrders
		}
	}
	if len(parts) > 1 && (parts[0] == string(SectionEquipment) || parts[0] == string(SectionOrders)) {
		id, err := url.PathUnescape(parts[1])
		if err == nil && id != "" && !reservedSegments[id] {
			s.open(s.Section, id)
			s.Edit = len(parts) > 2 && parts[2] == "edit"
		}
	}

	if s.Mode == ModeList {
		if id := query.Get("equipmentId"); id != "" {
			s.open(SectionEquipment, id)
		} else if id := firstNonEmpty(query.Get("orderID"), query.Get("orderId")); id != "" {
			s.open(SectionOrders, id)
		}
	}
}

// reservedSegments — страницы раздела, а не идентификаторы записей.
var reservedSegments = map[string]bool{
	"new":         true,
	"export.xlsx": true,
}

func (s *Shell) open(section Section, id string) {
	s.Section = section
	s.Mode = ModeDetail
	switch section {
	case SectionEquipment:
		s.EquipmentID = id
	case SectionOrders:
		s.OrderID = id
	}
}

// Handle применяет сообщение представления и возвращает адрес, который нужно записать.
func (s *Shell) Handle(msg views.Message) string {
	switch m := msg.(type) {
	case views.RecordViewed:
		s.open(sectionOf(m.Kind), m.ID)
		s.Edit = false
	case views.RecordEdited:
		s.open(sectionOf(m.Kind), m.ID)
		s.Edit = true
	case views.RecordCreated:
		s.open(sectionOf(m.Kind), m.ID)
		s.Edit = false
	case views.RecordUpdated:
		s.open(sectionOf(m.Kind), m.ID)
		s.Edit = false
	case views.NavigateBack:
		s.Section = sectionOf(m.Kind)
		s.Mode = ModeList
		s.EquipmentID, s.OrderID, s.Edit = "", "", false
	}
	return s.URL()
}

// Dispatch связывает представления с оболочкой: каждый адрес уходит в history.
func (s *Shell) Dispatch(history History) views.Dispatch {
	return func(msg views.Message) {
		u := s.Handle(msg)
		if history != nil {
			history.Push(u)
		}
	}
}

// URL — канонический адрес текущего состояния.
func (s *Shell) URL() string {
	path := s.BasePath + "/" + string(s.Section)
	if s.Mode == ModeDetail {
		if id := s.ActiveID(); id != "" {
			path += "/" + url.PathEscape(id)
			if s.Edit {
				path += "/edit"
			}
		}
	}
	return path
}

// ActiveID — id записи активного раздела.
func (s *Shell) ActiveID() string {
	if s.Section == SectionOrders {
		return s.OrderID
	}
	return s.EquipmentID
}

func sectionOf(k views.Kind) Section {
	if k == views.KindOrder {
		return SectionOrders
	}
	return SectionEquipment
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
