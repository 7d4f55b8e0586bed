package controller

import (
	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAlertController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Types(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type alertController struct {
	service service.IAlertService
}

func NewAlertController(service service.IAlertService) IAlertController {
	return &alertController{service: service}
}

func (c *alertController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/alerts")
	h.Get("", c.List)
	h.Get("/types", c.Types)
	h.Get("/:alertId", c.Show)
	h.Put("/:alertId/status", c.UpdateStatus)
}

func (c *alertController) List(ctx *fiber.Ctx) error {
	var query dto.AlertListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get alerts", res))
}

func (c *alertController) Types(ctx *fiber.Ctx) error {
	res, err := c.service.Types(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get alert types", res))
}

func (c *alertController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), ctx.Params("alertId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get alert", res))
}

func (c *alertController) UpdateStatus(ctx *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.Context(), ctx.Params("alertId"), req.Status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update alert status", res))
}
