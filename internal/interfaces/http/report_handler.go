package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empaque-api/internal/application/report"
)

// ReportHandler descarga de reportes PDF.
type ReportHandler struct {
	uc *report.PDFUseCase
	errorHandler
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.PDFUseCase, eh errorHandler) *ReportHandler {
	return &ReportHandler{uc: uc, errorHandler: eh}
}

// PackingBatchPDF godoc
// @Summary      PDF de un lote de empaque
// @Tags         reports
// @Produce      application/pdf
// @Param        batch_id  path  string  true  "ID del lote"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/packing/{batch_id}.pdf [get]
func (h *ReportHandler) PackingBatchPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.DownloadBatchPDF(c.UserContext(), c.Params("batch_id"))
	if err != nil {
		return h.respond(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
