package controller

import (
	"github.com/gofiber/fiber/v2"

	"sentia-be/internal/service"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	CSV(ctx *fiber.Ctx) error
	JSON(ctx *fiber.Ctx) error
}

type exportController struct {
	exportService service.IExportService
}

func NewExportController(exportService service.IExportService) IExportController {
	return &exportController{
		exportService: exportService,
	}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export/v1")
	h.Get("csv", c.CSV)
	h.Get("json", c.JSON)
}

func (c *exportController) CSV(ctx *fiber.Ctx) error {
	filter, err := parseDashboardFilter(ctx)
	if err != nil {
		return err
	}

	data, err := c.exportService.ExportCSV(ctx.Context(), filter)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="feedbacks_export.csv"`)
	return ctx.Send(data)
}

func (c *exportController) JSON(ctx *fiber.Ctx) error {
	filter, err := parseDashboardFilter(ctx)
	if err != nil {
		return err
	}

	data, err := c.exportService.ExportJSON(ctx.Context(), filter)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="feedbacks_export.json"`)
	return ctx.Send(data)
}
