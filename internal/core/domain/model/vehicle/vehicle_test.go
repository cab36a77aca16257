package vehicle_test

import (
	"testing"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/vehicle"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTruck(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "ABC-1D23")
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("should create an available vehicle", func(t *testing.T) {
		id := kernel.NewUUID()

		v, err := vehicle.NewVehicle(id, "ABC-1D23")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.ID().IsEqual(id))
		assert.Equal(t, "ABC-1D23", v.Plate())
		assert.Equal(t, vehicle.Available, v.Status())
		assert.Equal(t, 0, v.Version())
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.UUID{}, "ABC-1D23")

		require.Error(t, err)
		assert.Nil(t, v)
	})

	t.Run("should fail with empty plate", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreVehicle(t *testing.T) {
	t.Run("should restore status and version", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle(kernel.NewUUID(), "ABC-1D23", vehicle.InUse, 4)

		require.NoError(t, err)
		assert.Equal(t, vehicle.InUse, v.Status())
		assert.Equal(t, 4, v.Version())
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle(kernel.NewUUID(), "ABC-1D23", vehicle.Status(9), 1)

		require.Error(t, err)
		assert.Nil(t, v)
	})
}

func TestVehicle_Validate(t *testing.T) {
	var v *vehicle.Vehicle
	assert.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)

	v = &vehicle.Vehicle{}
	assert.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
}

func TestVehicle_Allocate(t *testing.T) {
	t.Run("should move Available to InUse", func(t *testing.T) {
		v := newTruck(t)

		require.NoError(t, v.Allocate())
		assert.Equal(t, vehicle.InUse, v.Status())
	})

	t.Run("should reject allocating an InUse vehicle", func(t *testing.T) {
		v := newTruck(t)
		require.NoError(t, v.Allocate())

		err := v.Allocate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "vehicle unavailable")
	})

	t.Run("should reject allocating a vehicle in maintenance", func(t *testing.T) {
		v := newTruck(t)
		require.NoError(t, v.SendToMaintenance())

		err := v.Allocate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestVehicle_Release(t *testing.T) {
	t.Run("should move InUse back to Available", func(t *testing.T) {
		v := newTruck(t)
		require.NoError(t, v.Allocate())

		v.Release()

		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("releasing an available vehicle is a no-op", func(t *testing.T) {
		v := newTruck(t)

		v.Release()

		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("releasing keeps a maintenance vehicle in maintenance", func(t *testing.T) {
		v := newTruck(t)
		require.NoError(t, v.SendToMaintenance())

		v.Release()

		assert.Equal(t, vehicle.Maintenance, v.Status())
	})
}

func TestVehicle_Maintenance(t *testing.T) {
	t.Run("should send an available vehicle to maintenance and back", func(t *testing.T) {
		v := newTruck(t)

		require.NoError(t, v.SendToMaintenance())
		assert.Equal(t, vehicle.Maintenance, v.Status())

		require.NoError(t, v.ReturnFromMaintenance())
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("should reject maintenance while allocated", func(t *testing.T) {
		v := newTruck(t)
		require.NoError(t, v.Allocate())

		err := v.SendToMaintenance()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, vehicle.InUse, v.Status())
	})

	t.Run("should reject returning a vehicle that is not in maintenance", func(t *testing.T) {
		v := newTruck(t)

		err := v.ReturnFromMaintenance()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestVehicleStatus(t *testing.T) {
	t.Run("string names", func(t *testing.T) {
		assert.Equal(t, "Available", vehicle.Available.String())
		assert.Equal(t, "InUse", vehicle.InUse.String())
		assert.Equal(t, "Maintenance", vehicle.Maintenance.String())
		assert.Equal(t, "Unknown", vehicle.Unknown.String())
		assert.Equal(t, "Unknown", vehicle.Status(9).String())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, vehicle.Available.Validate())
		require.NoError(t, vehicle.InUse.Validate())
		require.NoError(t, vehicle.Maintenance.Validate())
		require.Error(t, vehicle.Unknown.Validate())
		require.Error(t, vehicle.Status(9).Validate())
	})
}
