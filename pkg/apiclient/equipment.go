package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"storage-equipment/internal/dto"
)

func (c *Client) ListEquipment(ctx context.Context) ([]dto.EquipmentDTO, error) {
	var list []dto.EquipmentDTO
	if err := c.Do(ctx, http.MethodGet, "/equipment", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	var rec dto.EquipmentDTO
	if err := c.Do(ctx, http.MethodGet, "/equipment/"+url.PathEscape(id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) CreateEquipment(ctx context.Context, payload dto.EquipmentPayload) (*dto.EquipmentDTO, error) {
	var rec dto.EquipmentDTO
	if err := c.Do(ctx, http.MethodPost, "/equipment", payload, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateEquipment заменяет запись целиком (PUT).
func (c *Client) UpdateEquipment(ctx context.Context, id string, payload dto.EquipmentPayload) (*dto.EquipmentDTO, error) {
	var rec dto.EquipmentDTO
	if err := c.Do(ctx, http.MethodPut, "/equipment/"+url.PathEscape(id), payload, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/equipment/"+url.PathEscape(id), nil, nil)
}
