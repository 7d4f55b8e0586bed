package controller

import (
	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Types(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/documents")
	h.Get("", c.List)
	h.Get("/types", c.Types)
	h.Get("/:documentId", c.Show)
	h.Put("/:documentId/status", c.UpdateStatus)
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	var query dto.DocumentListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get documents", res))
}

func (c *documentController) Types(ctx *fiber.Ctx) error {
	res, err := c.service.Types(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get document types", res))
}

func (c *documentController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), ctx.Params("documentId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get document", res))
}

func (c *documentController) UpdateStatus(ctx *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.Context(), ctx.Params("documentId"), req.Status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update document status", res))
}
