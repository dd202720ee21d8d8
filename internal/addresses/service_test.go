package addresses

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

func setupAddressTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Address{}))
	return db
}

func validInput() AddressInput {
	return AddressInput{
		HouseNumber: "12A",
		StreetName:  "Bazaar Street",
		Landmark:    "Near temple",
		Village:     "Ammapet",
		City:        "Thanjavur",
		TalukID:     3,
		DistrictID:  7,
		StateName:   "Tamil Nadu",
	}
}

func TestAddressLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(NewRepository(setupAddressTestDB(t)))
	require.NoError(t, err)

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Thanjavur", created.City)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	update := validInput()
	update.City = "Kumbakonam"
	require.NoError(t, svc.Update(ctx, created.ID, update))

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Kumbakonam", listed[0].City)

	require.NoError(t, svc.Delete(ctx, created.ID))

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestAddressValidation(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(NewRepository(setupAddressTestDB(t)))
	require.NoError(t, err)

	input := validInput()
	input.City = ""
	_, createErr := svc.Create(ctx, input)
	require.Error(t, createErr)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(createErr).Code())

	input = validInput()
	input.TalukID = 0
	_, createErr = svc.Create(ctx, input)
	require.Error(t, createErr)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(createErr).Code())
}

func TestAddressNotFound(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(NewRepository(setupAddressTestDB(t)))
	require.NoError(t, err)

	updateErr := svc.Update(ctx, "missing-id", validInput())
	require.Error(t, updateErr)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(updateErr).Code())

	deleteErr := svc.Delete(ctx, "missing-id")
	require.Error(t, deleteErr)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(deleteErr).Code())
}
