package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"sentia-be/internal/dto"
	"sentia-be/internal/pkg/serverutils"
	"sentia-be/internal/service"
	"sentia-be/pkg/ingest"
)

type IIngestController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Text(ctx *fiber.Ctx) error
}

type ingestController struct {
	ingestionService service.IIngestionService
}

func NewIngestController(ingestionService service.IIngestionService) IIngestController {
	return &ingestController{
		ingestionService: ingestionService,
	}
}

func (c *ingestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ingest/v1")
	h.Post("upload", c.Upload)
	h.Post("text", c.Text)
}

func (c *ingestController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Arquivo é obrigatório")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.ingestionService.IngestUpload(ctx.Context(), fileHeader.Filename, data)
	if err != nil {
		if ingest.IsInputError(err) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Feedbacks analisados", res))
}

func (c *ingestController) Text(ctx *fiber.Ctx) error {
	var req dto.IngestTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.IngestText(ctx.Context(), &req)
	if err != nil {
		if ingest.IsInputError(err) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Feedbacks analisados", res))
}
