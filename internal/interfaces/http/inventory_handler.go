package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/application/inventory"
)

// InventoryHandler compras de materia prima y stock por cámara.
type InventoryHandler struct {
	purchases *inventory.PurchaseUseCase
	stock     *inventory.StockUseCase
	errorHandler
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(purchases *inventory.PurchaseUseCase, stock *inventory.StockUseCase, eh errorHandler) *InventoryHandler {
	return &InventoryHandler{purchases: purchases, stock: stock, errorHandler: eh}
}

// RegisterPurchase godoc
// @Summary      Registrar compra de materia prima
// @Description  Normaliza el contenido de los contenedores a kg y lo suma al stock de la cámara.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPurchaseRequest  true  "vendor, item, chamber_id, container_count, container_size, container_unit (gm|kg)"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/purchases [post]
func (h *InventoryHandler) RegisterPurchase(c *fiber.Ctx) error {
	var in dto.RegisterPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.purchases.RegisterPurchase(c.UserContext(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ChamberStock godoc
// @Summary      Stock de una cámara
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID de la cámara"
// @Success      200  {object}  dto.ChamberStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chambers/{id}/stock [get]
func (h *InventoryHandler) ChamberStock(c *fiber.Ctx) error {
	out, err := h.stock.ChamberStock(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// MaxPackets godoc
// @Summary      Paquetes máximos estimados
// @Description  floor(gramos guardados / tara del paquete) para el ítem de la cámara.
// @Tags         inventory
// @Produce      json
// @Param        id    path   string  true  "ID de la cámara"
// @Param        item  query  string  true  "Ítem de materia prima"
// @Param        type  query  string  true  "pouch | bag | box"
// @Param        size  query  string  true  "Tamaño del paquete"
// @Param        unit  query  string  true  "gm | kg"
// @Success      200   {object}  dto.MaxPacketsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/chambers/{id}/stock/max-packets [get]
func (h *InventoryHandler) MaxPackets(c *fiber.Ctx) error {
	size, err := decimal.NewFromString(c.Query("size"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "size inválido"})
	}
	out, err := h.stock.MaxPackets(c.UserContext(), c.Params("id"), c.Query("item"), c.Query("type"), size, c.Query("unit"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Movimientos de una cámara
// @Tags         inventory
// @Produce      json
// @Param        id      path   string  true   "ID de la cámara"
// @Param        from    query  string  false  "Desde (RFC 3339)"
// @Param        to      query  string  false  "Hasta (RFC 3339)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ChamberMovementListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/chambers/{id}/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC 3339)"})
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC 3339)"})
	}
	out, err := h.stock.Movements(c.UserContext(), c.Params("id"), from, to, pageFrom(c))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

func queryTime(c *fiber.Ctx, key string) (*time.Time, error) {
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
