package entity

import "time"

// Category representa una categoría de productos (jerárquica opcional).
// La cadena de padres debe terminar en una raíz; el ciclo se valida en cada
// mutación de ParentID.
type Category struct {
	ID          string
	Name        string
	Description string
	ParentID    string // vacío si es raíz
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
