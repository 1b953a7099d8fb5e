package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Inventory agrupa las métricas Prometheus del motor de inventario.
type Inventory struct {
	Movements *prometheus.CounterVec // movimientos por tipo y resultado
	Transfers *prometheus.CounterVec // traslados por resultado
	TxRetries prometheus.Histogram   // reintentos por fallo de serialización
}

// NewInventory crea y registra las métricas en el registry por defecto.
func NewInventory() *Inventory {
	return NewInventoryFor(prometheus.DefaultRegisterer)
}

// NewInventoryFor registra las métricas en un registry propio (útil en tests).
func NewInventoryFor(reg prometheus.Registerer) *Inventory {
	m := &Inventory{
		Movements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_movements_total",
				Help: "Total de movimientos de inventario procesados",
			},
			[]string{"kind", "outcome"},
		),
		Transfers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_transfers_total",
				Help: "Total de traslados entre ubicaciones procesados",
			},
			[]string{"outcome"},
		),
		TxRetries: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "inventory_tx_retries",
				Help:    "Reintentos de transacción por fallo de serialización",
				Buckets: []float64{0, 1, 2, 3},
			},
		),
	}
	reg.MustRegister(m.Movements, m.Transfers, m.TxRetries)
	return m
}

// MovementObserved incrementa el contador de movimientos. Seguro con m nil.
func (m *Inventory) MovementObserved(kind, outcome string) {
	if m == nil {
		return
	}
	m.Movements.WithLabelValues(kind, outcome).Inc()
}

// TransferObserved incrementa el contador de traslados. Seguro con m nil.
func (m *Inventory) TransferObserved(outcome string) {
	if m == nil {
		return
	}
	m.Transfers.WithLabelValues(outcome).Inc()
}

// RetriesObserved registra cuántos reintentos necesitó una transacción.
func (m *Inventory) RetriesObserved(n int) {
	if m == nil {
		return
	}
	m.TxRetries.Observe(float64(n))
}
