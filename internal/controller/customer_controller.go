package controller

import (
	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Jurisdictions(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Alerts(ctx *fiber.Ctx) error
	Documents(ctx *fiber.Ctx) error
	Cases(ctx *fiber.Ctx) error
	Activity(ctx *fiber.Ctx) error
}

type customerController struct {
	service service.ICustomerService
}

func NewCustomerController(service service.ICustomerService) ICustomerController {
	return &customerController{service: service}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customers")
	h.Get("", c.List)
	h.Get("/jurisdictions", c.Jurisdictions)
	h.Get("/:customerId", c.Show)
	h.Get("/:customerId/alerts", c.Alerts)
	h.Get("/:customerId/documents", c.Documents)
	h.Get("/:customerId/cases", c.Cases)
	h.Get("/:customerId/activity", c.Activity)
}

func (c *customerController) List(ctx *fiber.Ctx) error {
	var query dto.CustomerListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get customers", res))
}

func (c *customerController) Jurisdictions(ctx *fiber.Ctx) error {
	res, err := c.service.Jurisdictions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get jurisdictions", res))
}

func (c *customerController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), ctx.Params("customerId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get customer", res))
}

func (c *customerController) Alerts(ctx *fiber.Ctx) error {
	res, err := c.service.Alerts(ctx.Context(), ctx.Params("customerId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get customer alerts", res))
}

func (c *customerController) Documents(ctx *fiber.Ctx) error {
	res, err := c.service.Documents(ctx.Context(), ctx.Params("customerId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get customer documents", res))
}

func (c *customerController) Cases(ctx *fiber.Ctx) error {
	res, err := c.service.Cases(ctx.Context(), ctx.Params("customerId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get customer cases", res))
}

func (c *customerController) Activity(ctx *fiber.Ctx) error {
	res, err := c.service.Activity(ctx.Context(), ctx.Params("customerId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get customer activity", res))
}
