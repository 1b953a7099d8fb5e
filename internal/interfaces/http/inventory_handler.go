package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Almacen-api/internal/application/dto"
	"github.com/jcardenas/Almacen-api/internal/application/inventory"
	"github.com/jcardenas/Almacen-api/internal/domain"
	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

// InventoryHandler maneja las mutaciones de inventario (protegido). Todas las
// escrituras pasan por el motor; el handler solo traduce HTTP <-> dominio.
type InventoryHandler struct {
	engine  *inventory.Engine
	queries *inventory.HistoryQueries
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *inventory.Engine, queries *inventory.HistoryQueries) *InventoryHandler {
	return &InventoryHandler{engine: engine, queries: queries}
}

// Add godoc
// @Summary      Registrar entrada de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "product_id, location_id, quantity (> 0), reference, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/add [post]
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	return h.recordMovement(c, entity.MovementKindIncoming, false)
}

// Remove godoc
// @Summary      Registrar salida de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "product_id, location_id, quantity (> 0), reference, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/remove [post]
func (h *InventoryHandler) Remove(c *fiber.Ctx) error {
	return h.recordMovement(c, entity.MovementKindOutgoing, false)
}

// Adjust godoc
// @Summary      Registrar ajuste de inventario
// @Description  La cantidad es firmada y nunca cero; la nota es obligatoria
//
//	(los ajustes siempre llevan motivo auditable).
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "product_id, location_id, quantity (firmada, != 0), note (requerida)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	return h.recordMovement(c, entity.MovementKindAdjust, true)
}

func (h *InventoryHandler) recordMovement(c *fiber.Ctx, kind string, noteRequired bool) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if noteRequired && in.Note == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los ajustes requieren note con el motivo"})
	}
	movement, err := h.engine.RecordMovement(c.Context(), inventory.RecordMovementInput{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Quantity:   in.Quantity,
		Kind:       kind,
		ActorID:    actorID,
		Reference:  in.Reference,
		Note:       in.Note,
	})
	if err != nil {
		return engineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(movement))
}

// Transfer godoc
// @Summary      Trasladar stock entre ubicaciones
// @Description  Registra el traslado como unidad atómica: dos movimientos
//
//	gemelos enlazados más los dos deltas de stock, o nada.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, from_location_id, to_location_id, quantity (> 0), note"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	transfer, err := h.engine.RecordTransfer(c.Context(), inventory.RecordTransferInput{
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		ActorID:        actorID,
		Note:           in.Note,
	})
	if err != nil {
		return engineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToTransferResponse(transfer))
}

// GetStock godoc
// @Summary      Stock actual de un producto en una ubicación
// @Description  Devuelve 0 si nunca ha habido movimientos para el par.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  true  "ID de producto"
// @Param        location_id  query  string  true  "ID de ubicación"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	locationID := c.Query("location_id")
	if productID == "" || locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y location_id son requeridos"})
	}
	quantity, err := h.queries.GetStock(c.Context(), productID, locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"product_id":  productID,
		"location_id": locationID,
		"quantity":    quantity,
	})
}

// engineError traduce los errores del motor a respuestas HTTP: los rechazos
// de validación a 400, lo inexistente a 404 y los fallos de concurrencia o
// suficiencia a 409 (reintentable por el cliente).
func engineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto, ubicación o usuario no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto de concurrencia; reintente la operación"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
