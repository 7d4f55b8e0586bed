package controller

import (
	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICaseController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Types(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Notes(ctx *fiber.Ctx) error
	AddNote(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type caseController struct {
	service service.ICaseService
}

func NewCaseController(service service.ICaseService) ICaseController {
	return &caseController{service: service}
}

func (c *caseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cases")
	h.Get("", c.List)
	h.Get("/types", c.Types)
	h.Get("/:caseId", c.Show)
	h.Get("/:caseId/notes", c.Notes)
	h.Post("/:caseId/notes", c.AddNote)
	h.Put("/:caseId/status", c.UpdateStatus)
}

func (c *caseController) List(ctx *fiber.Ctx) error {
	var query dto.CaseListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get cases", res))
}

func (c *caseController) Types(ctx *fiber.Ctx) error {
	res, err := c.service.Types(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get case types", res))
}

func (c *caseController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), ctx.Params("caseId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get case", res))
}

func (c *caseController) Notes(ctx *fiber.Ctx) error {
	res, err := c.service.Notes(ctx.Context(), ctx.Params("caseId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get case notes", res))
}

func (c *caseController) AddNote(ctx *fiber.Ctx) error {
	var req dto.CreateCaseNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddNote(ctx.Context(), ctx.Params("caseId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add case note", res))
}

func (c *caseController) UpdateStatus(ctx *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.Context(), ctx.Params("caseId"), req.Status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update case status", res))
}
