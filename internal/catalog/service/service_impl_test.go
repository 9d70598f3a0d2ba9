package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vivekrupapara/chalan/internal/catalog/domain"
	"github.com/vivekrupapara/chalan/internal/catalog/repository"
	"github.com/vivekrupapara/chalan/internal/migration"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, migration.Run(db))

	return NewService(ServiceParam{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func TestUpsert_LatestRateWins(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Upsert(ctx, "Box", decimal.NewFromInt(100)))
	assert.NoError(t, svc.Upsert(ctx, "Box", decimal.NewFromInt(120)))

	items, err := svc.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Box", items[0].Name)
	assert.True(t, items[0].DefaultRate.Equal(decimal.NewFromInt(120)))
}

func TestUpsert_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Upsert(ctx, "   ", decimal.NewFromInt(10)), domain.ErrNameRequired)
	assert.ErrorIs(t, svc.Upsert(ctx, "Box", decimal.NewFromInt(-1)), domain.ErrInvalidRate)
}

func TestLookupRate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Upsert(ctx, "Plywood Sheet", decimal.RequireFromString("85.50")))

	rate, err := svc.LookupRate(ctx, "Plywood Sheet")
	assert.NoError(t, err)
	assert.NotNil(t, rate)
	assert.True(t, rate.Equal(decimal.RequireFromString("85.50")))

	rate, err = svc.LookupRate(ctx, "Unknown Item")
	assert.NoError(t, err)
	assert.Nil(t, rate)
}

func TestListAll_OrderedByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Upsert(ctx, "Zinc Sheet", decimal.NewFromInt(40)))
	assert.NoError(t, svc.Upsert(ctx, "Angle", decimal.NewFromInt(25)))
	assert.NoError(t, svc.Upsert(ctx, "Box", decimal.NewFromInt(100)))

	items, err := svc.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Angle", items[0].Name)
	assert.Equal(t, "Box", items[1].Name)
	assert.Equal(t, "Zinc Sheet", items[2].Name)
}

func TestRename(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Upsert(ctx, "Box", decimal.NewFromInt(100)))
	assert.NoError(t, svc.Rename(ctx, "Box", "Carton", decimal.NewFromInt(110)))

	rate, err := svc.LookupRate(ctx, "Carton")
	assert.NoError(t, err)
	assert.NotNil(t, rate)
	assert.True(t, rate.Equal(decimal.NewFromInt(110)))

	rate, err = svc.LookupRate(ctx, "Box")
	assert.NoError(t, err)
	assert.Nil(t, rate)
}

func TestRename_TargetNameTaken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Upsert(ctx, "Box", decimal.NewFromInt(100)))
	assert.NoError(t, svc.Upsert(ctx, "Carton", decimal.NewFromInt(90)))

	err := svc.Rename(ctx, "Box", "Carton", decimal.NewFromInt(110))
	assert.ErrorIs(t, err, domain.ErrNameExists)
}

func TestRename_Missing(t *testing.T) {
	svc := newTestService(t)

	err := svc.Rename(context.Background(), "Nope", "Still Nope", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Upsert(ctx, "Box", decimal.NewFromInt(100)))
	assert.NoError(t, svc.Delete(ctx, "Box"))
	assert.ErrorIs(t, svc.Delete(ctx, "Box"), domain.ErrNotFound)
}
