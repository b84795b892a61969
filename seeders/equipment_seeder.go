package seeders

import (
	"context"

	"go.uber.org/zap"

	"storage-equipment/internal/forms"
	"storage-equipment/internal/spreadsheet"
)

// SeedEquipment проверяет каждую строку и отправляет валидные через API.
// Невалидные строки попадают в Report.Rejected и на сервер не уходят.
func (s *Seeder) SeedEquipment(ctx context.Context, rows []spreadsheet.EquipmentRow) (Report, error) {
	var report Report
	now := s.opts.Now()
	jobs := make([]job, 0, len(rows))
	for _, row := range rows {
		label := row.Data.SerialNumber
		if label == "" {
			label = row.Data.Name
		}
		if errs := forms.ValidateEquipment(row.Data, now); !errs.Empty() {
			s.reject(&report, row.Line, label, errs.Flatten())
			continue
		}
		payload := row.Data.Payload()
		jobs = append(jobs, job{
			line:  row.Line,
			label: label,
			send: func(ctx context.Context) error {
				_, err := s.equipment.CreateEquipment(ctx, payload)
				return err
			},
		})
	}

	s.logger.Info("▶️  Загрузка оборудования",
		zap.Int("rows", len(rows)), zap.Int("valid", len(jobs)), zap.Int("workers", s.opts.Workers))
	err := s.run(ctx, "Оборудование", jobs, &report)
	return report, err
}

// SampleEquipmentRows — встроенный набор, когда файл не указан. Line нумеруется с 1.
func SampleEquipmentRows() []spreadsheet.EquipmentRow {
	rows := make([]spreadsheet.EquipmentRow, 0, len(sampleEquipment))
	for i, data := range sampleEquipment {
		rows = append(rows, spreadsheet.EquipmentRow{Line: i + 1, Data: data})
	}
	return rows
}
