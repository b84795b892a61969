package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/forms"
)

const EquipmentSheet = "Equipment"

var equipmentHeaders = []string{
	"Name", "Serial Number", "Manufacturer", "Model", "Installation Date", "Location",
	"Service Interval (days)", "Last Service", "Next Service", "Life Expectancy (years)",
	"Status", "Notes",
}

// WriteEquipment выгружает список в xlsx: одна строка на запись, даты в YYYY-MM-DD.
func WriteEquipment(w io.Writer, list []dto.EquipmentDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", EquipmentSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(EquipmentSheet, "A1", &equipmentHeaders); err != nil {
		return err
	}
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(EquipmentSheet, "A1", "L1", style)

	for i, e := range list {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			e.Name, e.SerialNumber, e.Manufacturer, e.Model,
			forms.FormatDateForInput(e.InstallationDate), e.Location,
			optionalNumber(e.ServiceInterval), forms.FormatDateForInput(e.LastService),
			forms.FormatDateForInput(e.NextService), optionalNumber(e.LifeExpectancy),
			string(e.Status), e.Notes,
		}
		if err := f.SetSheetRow(EquipmentSheet, cell, &row); err != nil {
			return fmt.Errorf("строка %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(EquipmentSheet, "A", "C", 25)
	_ = f.SetColWidth(EquipmentSheet, "E", "K", 18)
	_ = f.SetColWidth(EquipmentSheet, "L", "L", 50)

	return f.Write(w)
}

func optionalNumber(v int) interface{} {
	if v == 0 {
		return ""
	}
	return v
}

// EquipmentRow — строка листа, уже разложенная по полям формы. Line — номер строки в Excel.
type EquipmentRow struct {
	Line int
	Data forms.EquipmentFormData
}

// columnKeywords: заголовок колонки узнаётся по подстроке, первая подходящая побеждает.
// Next Service не читается: сервер считает его сам.
var columnKeywords = []struct {
	keyword string
	field   forms.EquipmentField
	skip    bool
}{
	{keyword: "next", skip: true},
	{keyword: "serial", field: forms.EquipmentSerialNumber},
	{keyword: "manufacturer", field: forms.EquipmentManufacturer},
	{keyword: "model", field: forms.EquipmentModel},
	{keyword: "installation", field: forms.EquipmentInstallationDate},
	{keyword: "location", field: forms.EquipmentLocation},
	{keyword: "interval", field: forms.EquipmentServiceInterval},
	{keyword: "last", field: forms.EquipmentLastService},
	{keyword: "life", field: forms.EquipmentLifeExpectancy},
	{keyword: "status", field: forms.EquipmentStatusField},
	{keyword: "notes", field: forms.EquipmentNotes},
	{keyword: "name", field: forms.EquipmentName},
}

func matchColumn(header string) (forms.EquipmentField, bool) {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return 0, false
	}
	for _, c := range columnKeywords {
		if strings.Contains(h, c.keyword) {
			return c.field, !c.skip
		}
	}
	return 0, false
}

// ReadEquipment ищет шапку таблицы на любом листе (строка, где есть колонки
// name и serial) и читает строки под ней. Пустые строки пропускаются.
func ReadEquipment(r io.Reader) ([]EquipmentRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("лист %q: %w", sheet, err)
		}
		for headerIdx, header := range rows {
			columns := map[int]forms.EquipmentField{}
			seen := map[forms.EquipmentField]bool{}
			for c, title := range header {
				if field, ok := matchColumn(title); ok && !seen[field] {
					columns[c] = field
					seen[field] = true
				}
			}
			if !seen[forms.EquipmentName] || !seen[forms.EquipmentSerialNumber] {
				continue
			}
			return readRows(rows, headerIdx, columns), nil
		}
	}
	return nil, fmt.Errorf("не найдена шапка таблицы: нужны колонки Name и Serial Number")
}

func readRows(rows [][]string, headerIdx int, columns map[int]forms.EquipmentField) []EquipmentRow {
	var out []EquipmentRow
	for i := headerIdx + 1; i < len(rows); i++ {
		data := forms.EquipmentFormData{Status: dto.EquipmentStatuses[0]}
		filled := false
		for c, field := range columns {
			if c >= len(rows[i]) {
				continue
			}
			value := strings.TrimSpace(rows[i][c])
			if value == "" {
				continue
			}
			if field == forms.EquipmentInstallationDate || field == forms.EquipmentLastService {
				value = cellDate(value)
			}
			data.Set(field, value)
			filled = true
		}
		if filled {
			out = append(out, EquipmentRow{Line: i + 1, Data: data})
		}
	}
	return out
}

// cellDate: ячейка с типом «дата» приходит серийным номером Excel.
func cellDate(value string) string {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}
	return t.Format("2006-01-02")
}
