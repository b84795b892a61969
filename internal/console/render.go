package console

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/forms"
	"storage-equipment/internal/shell"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"list", "equipment_detail", "order_detail", "equipment_form", "order_form", "confirm"}

var funcs = template.FuncMap{
	"statusLabel": statusLabel,
	"longDate":    longDate,
	"money":       func(m dto.Money) string { return "$" + m.Display() },
	"shortID":     shortID,
}

// parsePages собирает по набору шаблонов на страницу: layout + сама страница.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("шаблон %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// page — общие данные макета.
type page struct {
	Title   string
	Base    string
	Section shell.Section
	Banner  string
	Content interface{}
}

func (h *Handler) render(c echo.Context, code int, name string, p page) error {
	t, ok := h.pages[name]
	if !ok {
		return fmt.Errorf("неизвестная страница %q", name)
	}
	p.Base = h.basePath

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		h.logger.Error("ошибка отрисовки страницы", zap.String("page", name), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
	return c.HTMLBlob(code, buf.Bytes())
}

func statusLabel(status interface{}) string {
	s := fmt.Sprint(status)
	if s == "" {
		return "Unknown"
	}
	return strings.Replace(s, "_", " ", 1)
}

// longDate: «March 10, 2024» или «Not specified».
func longDate(value string) string {
	input := forms.FormatDateForInput(value)
	if input == "" {
		if value == "" {
			return "Not specified"
		}
		return value
	}
	t, err := forms.ParseInputDate(input)
	if err != nil {
		return value
	}
	return t.Format("January 2, 2006")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "Unknown"
	}
	return id
}

// listVM — общий вид списка для оборудования и заказов.
type listVM struct {
	Heading    string
	Subheading string
	AddLabel   string
	Path       string
	State      string
	Error      string
	EmptyTitle string
	EmptyHint  string
	Export     bool
	Rows       []rowVM
}

type rowVM struct {
	ID        string
	Title     string
	Subtitle  string
	Trailing  string
	Status    string
	CanEdit   bool
	CanDelete bool
}

type fieldVM struct {
	Key      string
	Label    string
	Type     string
	Value    string
	Error    string
	Required bool
	Options  []optionVM
}

type optionVM struct {
	Value    string
	Label    string
	Selected bool
}

var equipmentLabels = map[forms.EquipmentField]string{
	forms.EquipmentName:             "Name",
	forms.EquipmentSerialNumber:     "Serial Number",
	forms.EquipmentManufacturer:     "Manufacturer",
	forms.EquipmentModel:            "Model",
	forms.EquipmentLocation:         "Location",
	forms.EquipmentInstallationDate: "Installation Date",
	forms.EquipmentServiceInterval:  "Service Interval (days)",
	forms.EquipmentLastService:      "Last Service Date",
	forms.EquipmentLifeExpectancy:   "Life Expectancy (years)",
	forms.EquipmentStatusField:      "Status",
	forms.EquipmentNotes:            "Notes",
}

func equipmentFieldType(f forms.EquipmentField) string {
	switch f {
	case forms.EquipmentInstallationDate, forms.EquipmentLastService:
		return "date"
	case forms.EquipmentServiceInterval, forms.EquipmentLifeExpectancy:
		return "number"
	case forms.EquipmentStatusField:
		return "select"
	case forms.EquipmentNotes:
		return "textarea"
	}
	return "text"
}

func equipmentRequired(f forms.EquipmentField) bool {
	switch f {
	case forms.EquipmentName, forms.EquipmentSerialNumber, forms.EquipmentManufacturer,
		forms.EquipmentLocation, forms.EquipmentInstallationDate:
		return true
	}
	return false
}

type equipmentFormVM struct {
	Editing bool
	Action  string
	Cancel  string
	Fields  []fieldVM
}

type orderItemVM struct {
	Index         int
	EquipmentName string
	Quantity      int
	UnitPrice     string
	Total         string
	Errors        map[string]string
}

type orderFormVM struct {
	Editing      bool
	Action       string
	Cancel       string
	Fields       []fieldVM
	ItemsError   string
	Items        []orderItemVM
	Total        string
	HasItems     bool
	ReadOnlyNote string
}

type confirmVM struct {
	Prompt string
	Action string
	Cancel string
}

func statusOptions[S ~string](all []S, current S) []optionVM {
	out := make([]optionVM, 0, len(all))
	for _, s := range all {
		out = append(out, optionVM{Value: string(s), Label: statusLabel(s), Selected: s == current})
	}
	return out
}
