package regions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

func setupRegionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.District{}, &models.Taluk{}))
	return db
}

func TestDistrictLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(NewRepository(setupRegionsTestDB(t)))
	require.NoError(t, err)

	created, err := svc.AddDistrict(ctx, DistrictInput{ID: 1, Name: "Thanjavur"})
	require.NoError(t, err)
	require.Equal(t, "Thanjavur", created.Name)

	districts, err := svc.ListDistricts(ctx)
	require.NoError(t, err)
	require.Len(t, districts, 1)

	require.NoError(t, svc.UpdateDistrict(ctx, 1, DistrictInput{Name: "Thanjavur Rural"}))

	districts, err = svc.ListDistricts(ctx)
	require.NoError(t, err)
	require.Equal(t, "Thanjavur Rural", districts[0].Name)

	require.NoError(t, svc.DeleteDistrict(ctx, 1))

	districts, err = svc.ListDistricts(ctx)
	require.NoError(t, err)
	require.Empty(t, districts)
}

func TestUpdateDistrictNotFound(t *testing.T) {
	svc, err := NewService(NewRepository(setupRegionsTestDB(t)))
	require.NoError(t, err)

	updateErr := svc.UpdateDistrict(context.Background(), 99, DistrictInput{Name: "Nowhere"})
	require.Error(t, updateErr)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(updateErr).Code())
}

func TestTalukRequiresExistingDistrict(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(NewRepository(setupRegionsTestDB(t)))
	require.NoError(t, err)

	_, addErr := svc.AddTaluk(ctx, TalukInput{ID: 1, Name: "Orathanadu", DistrictID: 42})
	require.Error(t, addErr)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(addErr).Code())

	_, err = svc.AddDistrict(ctx, DistrictInput{ID: 42, Name: "Thanjavur"})
	require.NoError(t, err)

	created, err := svc.AddTaluk(ctx, TalukInput{ID: 1, Name: "Orathanadu", DistrictID: 42})
	require.NoError(t, err)
	require.Equal(t, 42, created.DistrictID)

	taluks, err := svc.ListTaluks(ctx, 42)
	require.NoError(t, err)
	require.Len(t, taluks, 1)

	taluks, err = svc.ListTaluks(ctx, 7)
	require.NoError(t, err)
	require.Empty(t, taluks)
}

func TestAddDistrictValidation(t *testing.T) {
	svc, err := NewService(NewRepository(setupRegionsTestDB(t)))
	require.NoError(t, err)

	_, addErr := svc.AddDistrict(context.Background(), DistrictInput{Name: "   "})
	require.Error(t, addErr)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(addErr).Code())
}
