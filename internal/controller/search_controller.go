package controller

import (
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	service service.ISearchService
}

func NewSearchController(service service.ISearchService) ISearchController {
	return &searchController{service: service}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	r.Get("/search", c.Search)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	res, err := c.service.Search(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search", res))
}
