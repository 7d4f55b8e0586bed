package controller

import (
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Kpis(ctx *fiber.Ctx) error
	RiskDistribution(ctx *fiber.Ctx) error
	AlertTrend(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard")
	h.Get("/kpis", c.Kpis)
	h.Get("/risk-distribution", c.RiskDistribution)
	h.Get("/alert-trend", c.AlertTrend)

	r.Get("/stats", c.Stats)
}

func (c *dashboardController) Kpis(ctx *fiber.Ctx) error {
	res, err := c.service.Kpis(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get kpis", res))
}

func (c *dashboardController) RiskDistribution(ctx *fiber.Ctx) error {
	res, err := c.service.RiskDistribution(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get risk distribution", res))
}

func (c *dashboardController) AlertTrend(ctx *fiber.Ctx) error {
	res, err := c.service.AlertTrend(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get alert trend", res))
}

func (c *dashboardController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.Stats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}
