package kvstore_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

var ks = kvstore.Keyspace{Namespace: "sr_storage", Version: 2}

func newRepos(t *testing.T) (*memory.Store, *kvstore.Repositories) {
	t.Helper()
	store := memory.NewStore()
	return store, kvstore.NewRepositories(store, ks, logger.Nop())
}

func movement(id, date string, nos int) *entity.StockMovement {
	return &entity.StockMovement{
		ID:       id,
		Date:     date,
		Type:     entity.MovementTypeIN,
		Category: entity.ParseCategory("LAPTOP"),
		Nos:      nos,
	}
}

func TestKeyspace_Key(t *testing.T) {
	assert.Equal(t, "sr_storage_v2_movements", ks.Key(kvstore.KindMovements))
	assert.Equal(t, "sr_storage_v3_customers", kvstore.Keyspace{Namespace: "sr_storage", Version: 3}.Key(kvstore.KindCustomers))
}

func TestMovementRepo_AppendAntepone(t *testing.T) {
	ctx := context.Background()
	_, repos := newRepos(t)

	require.NoError(t, repos.Movements.Append(ctx, movement("a", "2024-05-01", 1)))
	require.NoError(t, repos.Movements.Append(ctx, movement("b", "2024-05-01", 2)))

	list, err := repos.Movements.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
}

func TestMovementRepo_UpdateYReleer(t *testing.T) {
	ctx := context.Background()
	_, repos := newRepos(t)
	require.NoError(t, repos.Movements.Append(ctx, movement("a", "2024-05-01", 1)))

	nos := 12
	amount := decimal.RequireFromString("250.50")
	updated, err := repos.Movements.Update(ctx, "a", entity.MovementPatch{Nos: &nos, Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Nos)

	got, err := repos.Movements.GetByID(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12, got.Nos)
	require.NotNil(t, got.Amount)
	assert.True(t, amount.Equal(*got.Amount))
	assert.Equal(t, entity.MovementTypeIN, got.Type)
	assert.True(t, got.Category.IsKnown())
}

func TestMovementRepo_UpdateInexistenteNoModifica(t *testing.T) {
	ctx := context.Background()
	store, repos := newRepos(t)
	require.NoError(t, repos.Movements.Append(ctx, movement("a", "2024-05-01", 1)))
	before, _, _ := store.Get(ctx, ks.Key(kvstore.KindMovements))

	nos := 5
	_, err := repos.Movements.Update(ctx, "zzz", entity.MovementPatch{Nos: &nos})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, _, _ := store.Get(ctx, ks.Key(kvstore.KindMovements))
	assert.True(t, bytes.Equal(before, after))
}

func TestMovementRepo_GetByIDInexistente(t *testing.T) {
	_, repos := newRepos(t)
	got, err := repos.Movements.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMovementRepo_JSONIlegibleDevuelveVacio(t *testing.T) {
	ctx := context.Background()
	store, repos := newRepos(t)
	require.NoError(t, store.Put(ctx, ks.Key(kvstore.KindMovements), []byte("{not json")))

	list, err := repos.Movements.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMovementRepo_FormatoCompatible(t *testing.T) {
	ctx := context.Background()
	store, repos := newRepos(t)
	raw := `[{"id":"x1","date":"2024-05-01","type":"OUT","category":"printer","customer_id":"c-1","qty":3,"nos":3,"weight":1.25,"amount":900,"remarks":"OK","created_at":"2024-05-01T10:00:00Z","created_by":"1"}]`
	require.NoError(t, store.Put(ctx, ks.Key(kvstore.KindMovements), []byte(raw)))

	list, err := repos.Movements.ListByCustomer(ctx, "c-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	m := list[0]
	assert.Equal(t, entity.MovementTypeOUT, m.Type)
	assert.Equal(t, "PRINTER", m.Category.Name())
	assert.False(t, m.Category.IsKnown())
	require.NotNil(t, m.Weight)
	assert.Equal(t, "1.25", m.Weight.String())
	assert.Equal(t, "900", m.Amount.String())
}

func TestMovementRepo_VersionNuevaEmpiezaVacia(t *testing.T) {
	ctx := context.Background()
	store, repos := newRepos(t)
	require.NoError(t, repos.Movements.Append(ctx, movement("a", "2024-05-01", 1)))

	v3 := kvstore.NewRepositories(store, kvstore.Keyspace{Namespace: "sr_storage", Version: 3}, logger.Nop())
	list, err := v3.Movements.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCustomerRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	_, repos := newRepos(t)

	require.NoError(t, repos.Customers.Create(ctx, &entity.Customer{ID: "c1", Name: "ACME"}))
	require.NoError(t, repos.Customers.Create(ctx, &entity.Customer{ID: "c2", Name: "BOLT"}))
	assert.ErrorIs(t, repos.Customers.Create(ctx, &entity.Customer{ID: "c1", Name: "X"}), domain.ErrDuplicate)

	require.NoError(t, repos.Customers.Update(ctx, &entity.Customer{ID: "c2", Name: "BOLT CO"}))
	got, err := repos.Customers.GetByID(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, "BOLT CO", got.Name)

	require.NoError(t, repos.Customers.Delete(ctx, "c1"))
	assert.ErrorIs(t, repos.Customers.Delete(ctx, "c1"), domain.ErrNotFound)

	list, err := repos.Customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)
}

func TestProductRepo_CreateList(t *testing.T) {
	ctx := context.Background()
	_, repos := newRepos(t)
	require.NoError(t, repos.Products.Create(ctx, &entity.Product{ID: "p1", Name: "MOUSE", Category: "CPU", Unit: "PCS"}))
	require.NoError(t, repos.Products.Create(ctx, &entity.Product{ID: "p2", Name: "KEYBOARD", Category: "CPU", Unit: "PCS"}))

	list, err := repos.Products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].ID)

	p, err := repos.Products.GetByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "KEYBOARD", p.Name)
}

func TestMovementRepo_TipoSeNormalizaYLosInvalidosSeOmiten(t *testing.T) {
	ctx := context.Background()
	store, repos := newRepos(t)
	raw := `[{"id":"a","date":"2024-05-01","type":"in","category":"LAPTOP","nos":5},` +
		`{"id":"b","date":"2024-05-01","type":"TRANSFER","category":"LAPTOP","nos":9},` +
		`{"id":"c","date":"2024-05-01","type":" out ","category":"LAPTOP","qty":2}]`
	require.NoError(t, store.Put(ctx, ks.Key(kvstore.KindMovements), []byte(raw)))

	list, err := repos.Movements.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.MovementTypeIN, list[0].Type)
	assert.Equal(t, entity.MovementTypeOUT, list[1].Type)
	assert.Equal(t, 2, list[1].Nos)

	got, err := repos.Movements.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, got)

	nos := 1
	_, err = repos.Movements.Update(ctx, "b", entity.MovementPatch{Nos: &nos})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
