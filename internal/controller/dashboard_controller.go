package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sentia-be/internal/dto"
	"sentia-be/internal/entity"
	"sentia-be/internal/pkg/serverutils"
	"sentia-be/internal/service"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) IDashboardController {
	return &dashboardController{
		dashboardService: dashboardService,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Get("", c.Show)
}

func (c *dashboardController) Show(ctx *fiber.Ctx) error {
	filter, err := parseDashboardFilter(ctx)
	if err != nil {
		return err
	}

	res, err := c.dashboardService.GetDashboard(ctx.Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Dashboard", res))
}

// parseDashboardFilter reads the shared query parameters of the dashboard and
// export endpoints. Unknown parameters are ignored.
func parseDashboardFilter(ctx *fiber.Ctx) (dto.DashboardFilter, error) {
	var filter dto.DashboardFilter

	if raw := ctx.Query("session"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
		}
		filter.SessionId = &id
	}

	if raw := ctx.Query("sentiment"); raw != "" {
		sentiment, ok := entity.ParseSentiment(raw)
		if !ok {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid sentiment code")
		}
		filter.Sentiment = &sentiment
	}

	filter.ProductArea = ctx.Query("product_area")
	return filter, nil
}
