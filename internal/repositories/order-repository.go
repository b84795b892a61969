package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storage-equipment/internal/entities"
	db "storage-equipment/internal/infrastructure/bd"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/types"
)

const orderTable = "orders o"

var orderColumns = []string{
	"o.id", "o.requested_by", "o.requestor_department", "o.status", "o.notes",
	"o.created_at", "o.updated_at",
}

var orderMap = map[string]string{
	"requestedBy":         "o.requested_by",
	"requestorDepartment": "o.requestor_department",
	"status":              "o.status",
	"createdAt":           "o.created_at",
	"updatedAt":           "o.updated_at",
}

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, error)
	FindOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	CreateOrder(ctx context.Context, order entities.Order) (*entities.Order, error)
	UpdateOrder(ctx context.Context, order entities.Order, replaceItems bool) (*entities.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type OrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) OrderRepositoryInterface {
	return &OrderRepository{storage: storage, logger: logger}
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	err := row.Scan(&o.ID, &o.RequestedBy, &o.RequestorDepartment, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, error) {
	builder := db.Psql.Select(orderColumns...).From(orderTable)
	builder = db.ApplyListParams(builder, filter, orderMap, "o.requested_by", "o.requestor_department")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("o.created_at DESC", "o.id ASC")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка построения запроса списка заказов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	list := make([]entities.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		list = append(list, *o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]uuid.UUID, len(list))
	for i, o := range list {
		ids[i] = o.ID
	}
	items, err := r.loadItems(ctx, r.storage, ids...)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Items = items[list[i].ID]
	}
	return list, nil
}

func (r *OrderRepository) FindOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	return r.findOrder(ctx, r.storage, id)
}

func (r *OrderRepository) findOrder(ctx context.Context, q querier, id uuid.UUID) (*entities.Order, error) {
	query, args, err := db.Psql.Select(orderColumns...).From(orderTable).Where(sq.Eq{"o.id": id.String()}).ToSql()
	if err != nil {
		return nil, err
	}
	o, err := scanOrder(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	items, err := r.loadItems(ctx, q, id)
	if err != nil {
		return nil, err
	}
	o.Items = items[id]
	return o, nil
}

// loadItems выбирает позиции сразу для нескольких заказов, в порядке position.
func (r *OrderRepository) loadItems(ctx context.Context, q querier, ids ...uuid.UUID) (map[uuid.UUID][]entities.OrderItem, error) {
	// uuid.UUID — массив байт, squirrel принял бы его за список значений
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	query, args, err := db.Psql.
		Select("id", "order_id", "position", "equipment_name", "quantity", "unit_price::text").
		From("order_items").
		Where(sq.Eq{"order_id": keys}).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]entities.OrderItem, len(ids))
	for rows.Next() {
		var item entities.OrderItem
		var price string
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Position, &item.EquipmentName, &item.Quantity, &price); err != nil {
			return nil, fmt.Errorf("ошибка сканирования order_items: %w", err)
		}
		if item.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("некорректная цена позиции %d: %w", item.ID, err)
		}
		out[item.OrderID] = append(out[item.OrderID], item)
	}
	return out, rows.Err()
}

func (r *OrderRepository) insertItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	builder := db.Psql.Insert("order_items").Columns("order_id", "position", "equipment_name", "quantity", "unit_price")
	for i, item := range items {
		builder = builder.Values(orderID, i, item.EquipmentName, item.Quantity, item.UnitPrice)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order entities.Order) (*entities.Order, error) {
	var created *entities.Order
	err := inTx(ctx, r.storage, func(tx pgx.Tx) error {
		query, args, err := db.Psql.Insert("orders").
			Columns("id", "requested_by", "requestor_department", "status", "notes").
			Values(order.ID, order.RequestedBy, order.RequestorDepartment, order.Status, order.Notes).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
		if err := r.insertItems(ctx, tx, order.ID, order.Items); err != nil {
			return err
		}
		created, err = r.findOrder(ctx, tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateOrder переписывает шапку заказа; при replaceItems позиции заменяются целиком.
func (r *OrderRepository) UpdateOrder(ctx context.Context, order entities.Order, replaceItems bool) (*entities.Order, error) {
	var updated *entities.Order
	err := inTx(ctx, r.storage, func(tx pgx.Tx) error {
		query, args, err := db.Psql.Update("orders").
			SetMap(map[string]interface{}{
				"requested_by":         order.RequestedBy,
				"requestor_department": order.RequestorDepartment,
				"status":               order.Status,
				"notes":                order.Notes,
				"updated_at":           sq.Expr("CURRENT_TIMESTAMP"),
			}).
			Where(sq.Eq{"id": order.ID.String()}).
			ToSql()
		if err != nil {
			return err
		}
		result, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		if replaceItems {
			if _, err := tx.Exec(ctx, "DELETE FROM order_items WHERE order_id = $1", order.ID); err != nil {
				return err
			}
			if err := r.insertItems(ctx, tx, order.ID, order.Items); err != nil {
				return err
			}
		}
		updated, err = r.findOrder(ctx, tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOrder удаляет заказ; позиции уходят каскадом.
func (r *OrderRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
