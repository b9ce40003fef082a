package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carry-ledger-api/internal/application/analytics"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

func seed(t *testing.T) *kvstore.Repositories {
	t.Helper()
	ctx := context.Background()
	repos := kvstore.NewRepositories(memory.NewStore(), kvstore.Keyspace{Namespace: "test", Version: 1}, logger.Nop())
	for _, m := range []*entity.StockMovement{
		{ID: "1", Date: "2024-01-01", Type: entity.MovementTypeIN, Category: entity.ParseCategory("LAPTOP"), Nos: 5},
		{ID: "2", Date: "2024-01-02", Type: entity.MovementTypeOUT, Category: entity.ParseCategory("LAPTOP"), Nos: 2},
		{ID: "3", Date: "2024-05-15", Type: entity.MovementTypeIN, Category: entity.ParseCategory("CPU"), Nos: 4},
		{ID: "4", Date: "2024-05-15", Type: entity.MovementTypeOUT, Category: entity.ParseCategory("CPU"), Nos: 1},
	} {
		require.NoError(t, repos.Movements.Append(ctx, m))
	}
	return repos
}

func TestGetSummary_BalancesPorModo(t *testing.T) {
	repos := seed(t)
	now := func() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC) }
	uc := analytics.NewDashboardUseCase(repos.Movements, repos.Customers, time.UTC, now)

	byCat := func(mode string) map[string]int {
		s, err := uc.GetSummary(context.Background(), "ALL", mode)
		require.NoError(t, err)
		out := map[string]int{}
		for _, b := range s.Balances {
			out[b.Category] = b.Nos
		}
		return out
	}
	assert.Equal(t, 3, byCat("BOTH")["LAPTOP"])
	assert.Equal(t, 5, byCat("IN")["LAPTOP"])
	assert.Equal(t, 2, byCat("OUT")["LAPTOP"])
	assert.Equal(t, 0, byCat("BOTH")["GAME"])

	s, err := uc.GetSummary(context.Background(), "TODAY", "BOTH")
	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalStock)
	assert.Equal(t, 4, s.Today.In)
	assert.Equal(t, 1, s.Today.Out)
	assert.Equal(t, 3, s.Today.Net)
	require.Len(t, s.Recent, 4)
	assert.Equal(t, "2024-05-15", s.Recent[0].Date)
}

func TestGetSummary_ParametrosInvalidos(t *testing.T) {
	repos := seed(t)
	uc := analytics.NewDashboardUseCase(repos.Movements, repos.Customers, time.UTC, nil)

	_, err := uc.GetSummary(context.Background(), "FOREVER", "BOTH")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.GetSummary(context.Background(), "ALL", "SIDEWAYS")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
