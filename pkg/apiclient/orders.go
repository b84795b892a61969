package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"storage-equipment/internal/dto"
)

// Позиции заказов нормализуются сразу после получения: totalPrice пересчитывается.

func (c *Client) ListOrders(ctx context.Context) ([]dto.OrderDTO, error) {
	var list []dto.OrderDTO
	if err := c.Do(ctx, http.MethodGet, "/orders", nil, &list); err != nil {
		return nil, err
	}
	for i := range list {
		list[i] = list[i].Normalized()
	}
	return list, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*dto.OrderDTO, error) {
	var rec dto.OrderDTO
	if err := c.Do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &rec); err != nil {
		return nil, err
	}
	rec = rec.Normalized()
	return &rec, nil
}

func (c *Client) CreateOrder(ctx context.Context, payload dto.OrderPayload) (*dto.OrderDTO, error) {
	var rec dto.OrderDTO
	if err := c.Do(ctx, http.MethodPost, "/orders", payload, &rec); err != nil {
		return nil, err
	}
	rec = rec.Normalized()
	return &rec, nil
}

// PatchOrder частично обновляет заказ; сервер принимает его только в статусе pending.
func (c *Client) PatchOrder(ctx context.Context, id string, payload dto.OrderPayload) (*dto.OrderDTO, error) {
	var rec dto.OrderDTO
	if err := c.Do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(id), payload, &rec); err != nil {
		return nil, err
	}
	rec = rec.Normalized()
	return &rec, nil
}

// CancelOrder удаляет заказ (DELETE).
func (c *Client) CancelOrder(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
}
