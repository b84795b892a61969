package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"storage-equipment/internal/entities"
	db "storage-equipment/internal/infrastructure/bd"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/types"
)

const equipmentTable = "equipment e"

var equipmentColumns = []string{
	"e.id", "e.name", "e.serial_number", "e.manufacturer", "e.model",
	"e.installation_date", "e.location", "e.service_interval", "e.last_service",
	"e.next_service", "e.life_expectancy", "e.status", "e.notes",
	"e.created_at", "e.updated_at",
}

// ЕДИНАЯ КАРТА ПОЛЕЙ (Фильтр + Сортировка)
var equipmentMap = map[string]string{
	"name":             "e.name",
	"serialNumber":     "e.serial_number",
	"manufacturer":     "e.manufacturer",
	"location":         "e.location",
	"status":           "e.status",
	"installationDate": "e.installation_date",
	"nextService":      "e.next_service",
	"createdAt":        "e.created_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, e entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, e entities.Equipment) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Manufacturer, &e.Model,
		&e.InstallationDate, &e.Location, &e.ServiceInterval, &e.LastService,
		&e.NextService, &e.LifeExpectancy, &e.Status, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования equipment: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error) {
	builder := db.Psql.Select(equipmentColumns...).From(equipmentTable)
	builder = db.ApplyListParams(builder, filter, equipmentMap, "e.name", "e.serial_number", "e.manufacturer", "e.location")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("e.created_at ASC", "e.id ASC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка построения запроса списка оборудования: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	query, args, err := db.Psql.Select(equipmentColumns...).From(equipmentTable).
		Where(sq.Eq{"e.id": id.String()}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, e entities.Equipment) (*entities.Equipment, error) {
	query, args, err := db.Psql.Insert("equipment").
		Columns("id", "name", "serial_number", "manufacturer", "model", "installation_date",
			"location", "service_interval", "last_service", "next_service", "life_expectancy",
			"status", "notes").
		Values(e.ID, e.Name, e.SerialNumber, e.Manufacturer, e.Model, e.InstallationDate,
			e.Location, e.ServiceInterval, e.LastService, e.NextService, e.LifeExpectancy,
			e.Status, e.Notes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.storage.QueryRow(ctx, query, args...).Scan(&e.ID); err != nil {
		return nil, mapConstraintError(err)
	}
	return r.FindEquipment(ctx, e.ID)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, e entities.Equipment) (*entities.Equipment, error) {
	query, args, err := db.Psql.Update("equipment").
		SetMap(map[string]interface{}{
			"name":              e.Name,
			"serial_number":     e.SerialNumber,
			"manufacturer":      e.Manufacturer,
			"model":             e.Model,
			"installation_date": e.InstallationDate,
			"location":          e.Location,
			"service_interval":  e.ServiceInterval,
			"last_service":      e.LastService,
			"next_service":      e.NextService,
			"life_expectancy":   e.LifeExpectancy,
			"status":            e.Status,
			"notes":             e.Notes,
			"updated_at":        sq.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(sq.Eq{"id": e.ID.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return nil, mapConstraintError(err)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindEquipment(ctx, e.ID)
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// mapConstraintError превращает нарушение уникальности серийного номера в ошибку ввода.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperrors.NewInvalidInputError("serial number already exists")
		case "23514":
			return apperrors.NewInvalidInputError("value out of range: %s", pgErr.ConstraintName)
		}
	}
	return err
}
