package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Almacen-api/internal/application/dto"
	"github.com/jcardenas/Almacen-api/internal/application/inventory"
	"github.com/jcardenas/Almacen-api/internal/domain"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

// HistoryHandler lecturas del log de movimientos y traslados (protegido).
type HistoryHandler struct {
	queries *inventory.HistoryQueries
}

// NewHistoryHandler construye el handler de historial.
func NewHistoryHandler(queries *inventory.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{queries: queries}
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Description  Filtros opcionales por producto, ubicación, actor, tipo,
//
//	referencia y rango de fechas (RFC 3339). Orden descendente por fecha.
//
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        actor_id     query  string  false  "Filtrar por usuario"
// @Param        kind         query  string  false  "incoming, outgoing, adjust, transfer_out, transfer_in"
// @Param        reference    query  string  false  "Referencia externa exacta"
// @Param        from         query  string  false  "Desde (RFC 3339)"
// @Param        to           query  string  false  "Hasta (RFC 3339)"
// @Param        limit        query  int     false  "Máximo de filas (default 20, tope 100)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *HistoryHandler) ListMovements(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
		ActorID:    c.Query("actor_id"),
		Kind:       c.Query("kind"),
		Reference:  c.Query("reference"),
	}
	var err error
	if filter.From, err = parseTimeQuery(c, "from"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC 3339"})
	}
	if filter.To, err = parseTimeQuery(c, "to"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC 3339"})
	}
	page := parsePage(c)

	list, err := h.queries.ListMovements(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetMovement godoc
// @Summary      Obtener un movimiento por ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *HistoryHandler) GetMovement(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	m, err := h.queries.GetMovement(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToMovementResponse(m))
}

// ListTransfers godoc
// @Summary      Listar traslados
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        product_id        query  string  false  "Filtrar por producto"
// @Param        from_location_id  query  string  false  "Filtrar por ubicación origen"
// @Param        to_location_id    query  string  false  "Filtrar por ubicación destino"
// @Param        actor_id          query  string  false  "Filtrar por usuario"
// @Param        from              query  string  false  "Desde (RFC 3339)"
// @Param        to                query  string  false  "Hasta (RFC 3339)"
// @Param        limit             query  int     false  "Máximo de filas (default 20, tope 100)"
// @Param        offset            query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.TransferListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transfers [get]
func (h *HistoryHandler) ListTransfers(c *fiber.Ctx) error {
	filter := repository.TransferFilter{
		ProductID:      c.Query("product_id"),
		FromLocationID: c.Query("from_location_id"),
		ToLocationID:   c.Query("to_location_id"),
		ActorID:        c.Query("actor_id"),
	}
	var err error
	if filter.From, err = parseTimeQuery(c, "from"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC 3339"})
	}
	if filter.To, err = parseTimeQuery(c, "to"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC 3339"})
	}
	page := parsePage(c)

	list, err := h.queries.ListTransfers(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *dto.ToTransferResponse(t))
	}
	return c.JSON(dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetTransfer godoc
// @Summary      Obtener un traslado por ID
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [get]
func (h *HistoryHandler) GetTransfer(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	t, err := h.queries.GetTransfer(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "traslado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToTransferResponse(t))
}

// parsePage lee limit/offset de query y aplica los defaults de paginación.
func parsePage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.DefaultPage()
	return page
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
