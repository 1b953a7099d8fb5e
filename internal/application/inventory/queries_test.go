package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcardenas/Almacen-api/internal/application/inventory"
	"github.com/jcardenas/Almacen-api/internal/domain"
	"github.com/jcardenas/Almacen-api/internal/domain/entity"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

func buildQueries(t *testing.T) (*inventory.Engine, *inventory.HistoryQueries, *memStore) {
	t.Helper()
	engine, store := buildEngine(t, inventory.Policy{BlockInactive: true})
	queries := inventory.NewHistoryQueries(
		&fakeMovementRepo{s: store},
		&fakeTransferRepo{s: store},
		&fakeStockRepo{s: store},
	)
	return engine, queries, store
}

func TestHistoryQueries_GetMovementInexistente(t *testing.T) {
	_, queries, _ := buildQueries(t)
	_, err := queries.GetMovement(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryQueries_GetTransferInexistente(t *testing.T) {
	_, queries, _ := buildQueries(t)
	_, err := queries.GetTransfer(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryQueries_ListMovementsFiltraPorTipo(t *testing.T) {
	engine, queries, _ := buildQueries(t)
	ctx := context.Background()
	seedStock(engine, t, testLocationA, "10")
	seedStock(engine, t, testLocationB, "5")

	_, err := engine.RecordTransfer(ctx, inventory.RecordTransferInput{
		ProductID: testProductID, FromLocationID: testLocationA, ToLocationID: testLocationB,
		Quantity: dec("2"), ActorID: testActorID,
	})
	require.NoError(t, err)

	incoming, err := queries.ListMovements(ctx, repository.MovementFilter{
		Kind: entity.MovementKindIncoming,
	}, 50, 0)
	require.NoError(t, err)
	assert.Len(t, incoming, 2)

	outs, err := queries.ListMovements(ctx, repository.MovementFilter{
		Kind: entity.MovementKindTransferOut,
	}, 50, 0)
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.True(t, outs[0].Quantity.Equal(dec("-2")))
}

func TestHistoryQueries_ListMovementsOrdenDescendente(t *testing.T) {
	engine, queries, _ := buildQueries(t)
	ctx := context.Background()
	seedStock(engine, t, testLocationA, "1")
	seedStock(engine, t, testLocationA, "2")
	seedStock(engine, t, testLocationA, "3")

	list, err := queries.ListMovements(ctx, repository.MovementFilter{}, 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Greater(t, list[0].ID, list[1].ID, "los más recientes primero")
	assert.Greater(t, list[1].ID, list[2].ID)
}

func TestHistoryQueries_GetStockDevuelveLaCantidadActual(t *testing.T) {
	engine, queries, _ := buildQueries(t)
	ctx := context.Background()
	seedStock(engine, t, testLocationA, "8")

	qty, err := queries.GetStock(ctx, testProductID, testLocationA)
	require.NoError(t, err)
	assert.True(t, qty.Equal(dec("8")))

	// Par sin movimientos: cero, no error.
	qty, err = queries.GetStock(ctx, testProductID, testLocationB)
	require.NoError(t, err)
	assert.True(t, qty.IsZero())
}

func TestHistoryQueries_GetTransferExistente(t *testing.T) {
	engine, queries, _ := buildQueries(t)
	ctx := context.Background()
	seedStock(engine, t, testLocationA, "10")

	created, err := engine.RecordTransfer(ctx, inventory.RecordTransferInput{
		ProductID: testProductID, FromLocationID: testLocationA, ToLocationID: testLocationB,
		Quantity: dec("3"), ActorID: testActorID,
	})
	require.NoError(t, err)

	got, err := queries.GetTransfer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.OutMovementID, got.OutMovementID)
	assert.Equal(t, created.InMovementID, got.InMovementID)
	assert.True(t, got.Quantity.Equal(dec("3")))
}
