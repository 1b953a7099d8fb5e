package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU         string           `json:"sku"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	UnitMeasure string           `json:"unit_measure"`
	UnitCost    decimal.Decimal  `json:"unit_cost"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	MinStock    decimal.Decimal  `json:"min_stock"`
	MaxStock    *decimal.Decimal `json:"max_stock,omitempty"`
	CategoryID  string           `json:"category_id,omitempty"`
	SupplierID  string           `json:"supplier_id,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/{id}. Campos nil no cambian.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	UnitMeasure *string          `json:"unit_measure,omitempty"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	MinStock    *decimal.Decimal `json:"min_stock,omitempty"`
	MaxStock    *decimal.Decimal `json:"max_stock,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	SupplierID  *string          `json:"supplier_id,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// ProductResponse representación JSON de un producto.
type ProductResponse struct {
	ID          string           `json:"id"`
	SKU         string           `json:"sku"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	UnitMeasure string           `json:"unit_measure"`
	UnitCost    decimal.Decimal  `json:"unit_cost"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	MinStock    decimal.Decimal  `json:"min_stock"`
	MaxStock    *decimal.Decimal `json:"max_stock,omitempty"`
	CategoryID  string           `json:"category_id,omitempty"`
	SupplierID  string           `json:"supplier_id,omitempty"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
}

// UpdateCategoryRequest body para PUT /api/categories/{id}.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"` // "" = volver raíz
}

// CategoryResponse representación JSON de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse página de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/{id}.
type UpdateSupplierRequest struct {
	Name        *string `json:"name,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// SupplierResponse representación JSON de un proveedor.
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierListResponse página de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Name            string           `json:"name"`
	Address         string           `json:"address,omitempty"`
	ParentID        string           `json:"parent_id,omitempty"`
	StorageCapacity *decimal.Decimal `json:"storage_capacity,omitempty"`
}

// UpdateLocationRequest body para PUT /api/locations/{id}.
type UpdateLocationRequest struct {
	Name            *string          `json:"name,omitempty"`
	Address         *string          `json:"address,omitempty"`
	ParentID        *string          `json:"parent_id,omitempty"` // "" = volver raíz
	StorageCapacity *decimal.Decimal `json:"storage_capacity,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

// LocationResponse representación JSON de una ubicación.
type LocationResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Address         string           `json:"address,omitempty"`
	ParentID        string           `json:"parent_id,omitempty"`
	StorageCapacity *decimal.Decimal `json:"storage_capacity,omitempty"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// LocationListResponse página de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
