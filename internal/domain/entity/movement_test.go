package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcardenas/Almacen-api/internal/domain"
	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestSignedQuantity_IncomingGuardaPositiva(t *testing.T) {
	got, err := entity.SignedQuantity(entity.MovementKindIncoming, dec("5"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("5")))
}

func TestSignedQuantity_OutgoingNiegaLaMagnitud(t *testing.T) {
	got, err := entity.SignedQuantity(entity.MovementKindOutgoing, dec("3.50"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("-3.50")), "outgoing recibe magnitud y guarda el valor negado")
}

func TestSignedQuantity_AdjustConservaElSigno(t *testing.T) {
	pos, err := entity.SignedQuantity(entity.MovementKindAdjust, dec("2"))
	require.NoError(t, err)
	assert.True(t, pos.Equal(dec("2")))

	neg, err := entity.SignedQuantity(entity.MovementKindAdjust, dec("-2"))
	require.NoError(t, err)
	assert.True(t, neg.Equal(dec("-2")))
}

func TestSignedQuantity_RechazaCantidadesInvalidas(t *testing.T) {
	cases := []struct {
		name string
		kind string
		qty  decimal.Decimal
	}{
		{"incoming cero", entity.MovementKindIncoming, decimal.Zero},
		{"incoming negativa", entity.MovementKindIncoming, dec("-1")},
		{"outgoing cero", entity.MovementKindOutgoing, decimal.Zero},
		{"outgoing negativa", entity.MovementKindOutgoing, dec("-1")},
		{"adjust cero", entity.MovementKindAdjust, decimal.Zero},
		{"tipo desconocido", "purchase", dec("1")},
		{"transfer_out directo", entity.MovementKindTransferOut, dec("1")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.SignedQuantity(tc.kind, tc.qty)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestValidKind_IncluyeTrasladosPeroNoComoRequest(t *testing.T) {
	assert.True(t, entity.ValidKind(entity.MovementKindTransferOut))
	assert.True(t, entity.ValidKind(entity.MovementKindTransferIn))
	assert.False(t, entity.ValidRequestKind(entity.MovementKindTransferOut))
	assert.False(t, entity.ValidRequestKind(entity.MovementKindTransferIn))
	assert.True(t, entity.ValidRequestKind(entity.MovementKindAdjust))
	assert.False(t, entity.ValidRequestKind("sale"))
}
