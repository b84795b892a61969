package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storage-equipment/internal/dto"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/types"
)

func intPtr(v int) *int { return &v }

func newEquipmentService() (EquipmentServiceInterface, *memoryEquipmentRepo, *memoryCache) {
	repo := &memoryEquipmentRepo{}
	cache := newMemoryCache()
	return NewEquipmentService(repo, cache, time.Minute, nil, zap.NewNop()), repo, cache
}

func samplePayload() dto.EquipmentPayload {
	return dto.EquipmentPayload{
		Name:             "Ventilator-12",
		SerialNumber:     "SN-001",
		Manufacturer:     "Acme Medical",
		Location:         "ICU Room 4",
		InstallationDate: "2024-03-10",
		LastService:      "2024-03-10",
		ServiceInterval:  intPtr(90),
		LifeExpectancy:   intPtr(10),
	}
}

func TestEquipmentService_CreateComputesNextService(t *testing.T) {
	svc, _, _ := newEquipmentService()

	rec, err := svc.CreateEquipment(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "2024-03-10T00:00:00Z", rec.InstallationDate)
	assert.Equal(t, "2024-06-08T00:00:00Z", rec.NextService)
	assert.Equal(t, dto.EquipmentOperational, rec.Status)
}

func TestEquipmentService_RejectsIntervalBeyondLifetime(t *testing.T) {
	svc, repo, _ := newEquipmentService()
	p := samplePayload()
	p.ServiceInterval, p.LifeExpectancy = intPtr(800), intPtr(2)

	_, err := svc.CreateEquipment(context.Background(), p)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Empty(t, repo.rows)
}

func TestEquipmentService_ListIsCachedUntilWrite(t *testing.T) {
	svc, repo, _ := newEquipmentService()
	ctx := context.Background()
	_, err := svc.CreateEquipment(ctx, samplePayload())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		list, err := svc.GetEquipment(ctx, types.Filter{})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	}
	assert.Equal(t, 1, repo.lists)

	p := samplePayload()
	p.SerialNumber = "SN-002"
	_, err = svc.CreateEquipment(ctx, p)
	require.NoError(t, err)

	list, err := svc.GetEquipment(ctx, types.Filter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, repo.lists)

	_, err = svc.GetEquipment(ctx, types.Filter{Search: "vent"})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lists)
}

func TestEquipmentService_UpdateInvalidatesDetail(t *testing.T) {
	svc, _, _ := newEquipmentService()
	ctx := context.Background()
	rec, err := svc.CreateEquipment(ctx, samplePayload())
	require.NoError(t, err)

	_, err = svc.FindEquipment(ctx, rec.ID)
	require.NoError(t, err)

	p := samplePayload()
	p.Name = "Ventilator-13"
	p.Status = dto.EquipmentInRepair
	_, err = svc.UpdateEquipment(ctx, rec.ID, p)
	require.NoError(t, err)

	got, err := svc.FindEquipment(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ventilator-13", got.Name)
	assert.Equal(t, dto.EquipmentInRepair, got.Status)
}

func TestEquipmentService_UnknownAndMalformedIDs(t *testing.T) {
	svc, _, _ := newEquipmentService()
	ctx := context.Background()

	_, err := svc.FindEquipment(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = svc.FindEquipment(ctx, "8f14e45f-ceea-467a-9575-2b9f1d8a3c10")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteEquipment(ctx, "8f14e45f-ceea-467a-9575-2b9f1d8a3c10"), apperrors.ErrNotFound)
}
