package controller

import (
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
}

func NewActivityController(service service.IActivityService) IActivityController {
	return &activityController{service: service}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	r.Get("/activity", c.List)
}

func (c *activityController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get activity", res))
}
