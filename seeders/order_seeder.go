package seeders

import (
	"context"

	"go.uber.org/zap"

	"storage-equipment/internal/forms"
)

type OrderRow struct {
	Line int
	Data forms.OrderFormData
}

// SeedOrders работает так же, как SeedEquipment: сумма позиций
// пересчитывается в Payload, клиентские totalPrice не доверяются.
func (s *Seeder) SeedOrders(ctx context.Context, rows []OrderRow) (Report, error) {
	var report Report
	jobs := make([]job, 0, len(rows))
	for _, row := range rows {
		label := row.Data.RequestedBy
		if errs := forms.ValidateOrder(row.Data); !errs.Empty() {
			s.reject(&report, row.Line, label, errs.Flatten())
			continue
		}
		payload := row.Data.Payload()
		jobs = append(jobs, job{
			line:  row.Line,
			label: label,
			send: func(ctx context.Context) error {
				_, err := s.orders.CreateOrder(ctx, payload)
				return err
			},
		})
	}

	s.logger.Info("▶️  Загрузка заказов",
		zap.Int("rows", len(rows)), zap.Int("valid", len(jobs)), zap.Int("workers", s.opts.Workers))
	err := s.run(ctx, "Заказы", jobs, &report)
	return report, err
}

func SampleOrderRows() []OrderRow {
	rows := make([]OrderRow, 0, len(sampleOrders))
	for i, data := range sampleOrders {
		rows = append(rows, OrderRow{Line: i + 1, Data: data})
	}
	return rows
}
