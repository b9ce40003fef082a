package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/application/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

var session = &entity.Session{UserID: "u-admin", Username: "admin", Role: entity.RoleAdmin}

func setup(t *testing.T) (*inventory.MovementUseCase, *kvstore.Repositories) {
	t.Helper()
	repos := kvstore.NewRepositories(memory.NewStore(), kvstore.Keyspace{Namespace: "test", Version: 1}, logger.Nop())
	require.NoError(t, repos.Customers.Create(context.Background(), &entity.Customer{ID: "c1", Name: "ACME"}))
	fixed := func() time.Time { return time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC) }
	return inventory.NewMovementUseCase(repos.Movements, repos.Customers, fixed), repos
}

func TestCarryIn_NormalizaYPersiste(t *testing.T) {
	uc, repos := setup(t)
	amount := decimal.NewFromInt(500)

	out, err := uc.CarryIn(context.Background(), session, dto.MovementRequest{
		Date: "2024-05-15", Category: "laptop", CustomerID: "c1", Nos: 5, Amount: &amount, Remarks: "fresh stock",
	})
	require.NoError(t, err)
	assert.Equal(t, "IN", out.Type)
	assert.Equal(t, "LAPTOP", out.Category)
	assert.True(t, out.CategoryKnown)
	assert.Equal(t, "FRESH STOCK", out.Remarks)
	assert.Equal(t, "ACME", out.CustomerName)
	assert.Equal(t, "u-admin", out.CreatedBy)
	assert.NotEmpty(t, out.ID)

	stored, err := repos.Movements.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 5, stored.Nos)
}

func TestCarryOut_CategoriaLibreConOthers(t *testing.T) {
	uc, _ := setup(t)
	out, err := uc.CarryOut(context.Background(), session, dto.MovementRequest{
		Date: "2024-05-15", Category: "OTHERS", CustomCategory: "printer", Nos: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "OUT", out.Type)
	assert.Equal(t, "PRINTER", out.Category)
	assert.False(t, out.CategoryKnown)
	assert.Equal(t, "INTERNAL", out.CustomerName)
}

func TestCarryIn_Validaciones(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	neg := decimal.NewFromInt(-1)

	cases := map[string]dto.MovementRequest{
		"fecha inválida":      {Date: "15/05/2024", Category: "CPU", Nos: 1},
		"sin categoría":       {Date: "2024-05-15", Nos: 1},
		"others sin texto":    {Date: "2024-05-15", Category: "OTHERS", Nos: 1},
		"nos negativo":        {Date: "2024-05-15", Category: "CPU", Nos: -1},
		"importe negativo":    {Date: "2024-05-15", Category: "CPU", Nos: 1, Amount: &neg},
		"cliente inexistente": {Date: "2024-05-15", Category: "CPU", Nos: 1, CustomerID: "nope"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.CarryIn(ctx, session, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := uc.CarryIn(ctx, nil, dto.MovementRequest{Date: "2024-05-15", Category: "CPU", Nos: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdate_CorrigeCampos(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	created, err := uc.CarryIn(ctx, session, dto.MovementRequest{Date: "2024-05-15", Category: "CPU", CustomerID: "c1", Nos: 1})
	require.NoError(t, err)

	nos := 7
	internal := ""
	updated, err := uc.Update(ctx, created.ID, dto.UpdateMovementRequest{Nos: &nos, CustomerID: &internal})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Nos)
	assert.Equal(t, "INTERNAL", updated.CustomerName)
	assert.Equal(t, "IN", updated.Type)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Nos)
}

func TestUpdate_Errores(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	nos := 1

	_, err := uc.Update(ctx, "missing", dto.UpdateMovementRequest{Nos: &nos})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, "missing", dto.UpdateMovementRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_FiltraOrdenaYPagina(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	for _, in := range []dto.MovementRequest{
		{Date: "2024-05-01", Category: "CPU", CustomerID: "c1", Nos: 1},
		{Date: "2024-05-03", Category: "LAPTOP", CustomerID: "c1", Nos: 2},
		{Date: "2024-05-02", Category: "CPU", Nos: 4},
	} {
		_, err := uc.CarryIn(ctx, session, in)
		require.NoError(t, err)
	}
	_, err := uc.CarryOut(ctx, session, dto.MovementRequest{Date: "2024-05-04", Category: "CPU", CustomerID: "c1", Nos: 3})
	require.NoError(t, err)

	all, err := uc.History(ctx, dto.HistoryQuery{Type: "ALL", Category: "ALL"})
	require.NoError(t, err)
	require.Len(t, all.Items, 4)
	assert.Equal(t, "2024-05-04", all.Items[0].Date)
	assert.Equal(t, "2024-05-01", all.Items[3].Date)
	assert.Equal(t, 7, all.Stats.In)
	assert.Equal(t, 3, all.Stats.Out)

	acme, err := uc.History(ctx, dto.HistoryQuery{Search: "acme", Type: "IN"})
	require.NoError(t, err)
	assert.Len(t, acme.Items, 2)

	page, err := uc.History(ctx, dto.HistoryQuery{Limit: 2, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 4, page.Page.Total)
}

func TestCategories_IncluyeLibres(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	_, err := uc.CarryIn(ctx, session, dto.MovementRequest{Date: "2024-05-01", Category: "OTHERS", CustomCategory: "drone", Nos: 1})
	require.NoError(t, err)

	cats, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Contains(t, cats.Known, "LAPTOP")
	assert.NotContains(t, cats.Known, "OTHERS")
	assert.Contains(t, cats.Options, "OTHERS")
	assert.Equal(t, []string{"DRONE"}, cats.Custom)
}
