package seeders

import (
	"context"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storage-equipment/internal/dto"
)

const DefaultWorkers = 4

type EquipmentCreator interface {
	CreateEquipment(ctx context.Context, payload dto.EquipmentPayload) (*dto.EquipmentDTO, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, payload dto.OrderPayload) (*dto.OrderDTO, error)
}

// Options: Progress == nil пишет полосу прогресса в stdout, Now == nil берёт time.Now.
type Options struct {
	Workers  int
	Progress io.Writer
	Now      func() time.Time
}

// Outcome — строка, не попавшая в систему. Problems заполнен для отклонённых
// валидацией строк, Err — для ошибок API.
type Outcome struct {
	Line     int
	Label    string
	Problems map[string]string
	Err      error
}

type Report struct {
	Created  int
	Rejected []Outcome
	Failed   []Outcome
}

type Seeder struct {
	equipment EquipmentCreator
	orders    OrderCreator
	opts      Options
	logger    *zap.Logger
}

func New(equipment EquipmentCreator, orders OrderCreator, opts Options, logger *zap.Logger) *Seeder {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Progress == nil {
		opts.Progress = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Seeder{equipment: equipment, orders: orders, opts: opts, logger: logger}
}

// job — уже проверенная строка, готовая к отправке.
type job struct {
	line  int
	label string
	send  func(ctx context.Context) error
}

// run отправляет задания не более чем в opts.Workers потоков. Ошибка API по
// одной строке не останавливает остальные; прерывает только отмена ctx.
func (s *Seeder) run(ctx context.Context, title string, jobs []job, report *Report) error {
	bar := progressbar.NewOptions(len(jobs),
		progressbar.OptionSetWriter(s.opts.Progress),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(title),
		progressbar.OptionShowCount(),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionThrottle(50*time.Millisecond),
	)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := j.send(gctx)

			mu.Lock()
			defer mu.Unlock()
			_ = bar.Add(1)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logger.Warn("строка не загружена",
					zap.Int("line", j.line), zap.String("record", j.label), zap.Error(err))
				report.Failed = append(report.Failed, Outcome{Line: j.line, Label: j.label, Err: err})
				return nil
			}
			report.Created++
			return nil
		})
	}
	err := g.Wait()
	_ = bar.Finish()

	sort.Slice(report.Failed, func(a, b int) bool { return report.Failed[a].Line < report.Failed[b].Line })
	return err
}

func (s *Seeder) reject(report *Report, line int, label string, problems map[string]string) {
	s.logger.Warn("строка отклонена валидацией",
		zap.Int("line", line), zap.String("record", label), zap.Any("problems", problems))
	report.Rejected = append(report.Rejected, Outcome{Line: line, Label: label, Problems: problems})
}
