package controller

import (
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	QuarterlyMetrics(ctx *fiber.Ctx) error
	ResolutionRate(ctx *fiber.Ctx) error
	SlaAdherence(ctx *fiber.Ctx) error
}

type reportController struct {
	service service.IReportService
}

func NewReportController(service service.IReportService) IReportController {
	return &reportController{service: service}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reports")
	h.Get("/quarterly-metrics", c.QuarterlyMetrics)
	h.Get("/resolution-rate", c.ResolutionRate)
	h.Get("/sla-adherence", c.SlaAdherence)
}

func (c *reportController) QuarterlyMetrics(ctx *fiber.Ctx) error {
	res, err := c.service.QuarterlyMetrics(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get quarterly metrics", res))
}

func (c *reportController) ResolutionRate(ctx *fiber.Ctx) error {
	res, err := c.service.ResolutionRate(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get resolution rate", res))
}

func (c *reportController) SlaAdherence(ctx *fiber.Ctx) error {
	res, err := c.service.SlaAdherence(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sla adherence", res))
}
