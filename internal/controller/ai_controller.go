package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	KeyStatus(ctx *fiber.Ctx) error
	SetKey(ctx *fiber.Ctx) error
	DeleteKey(ctx *fiber.Ctx) error
	RiskAssessment(ctx *fiber.Ctx) error
	AlertTriage(ctx *fiber.Ctx) error
	CaseSummary(ctx *fiber.Ctx) error
	ComplianceNarrative(ctx *fiber.Ctx) error
}

type aiController struct {
	service service.IAiService
}

func NewAiController(service service.IAiService) IAiController {
	return &aiController{service: service}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai")
	h.Get("/key-status", c.KeyStatus)
	h.Post("/key", c.SetKey)
	h.Delete("/key", c.DeleteKey)
	h.Post("/risk-assessment/:customerId", c.RiskAssessment)
	h.Post("/alert-triage/:alertId", c.AlertTriage)
	h.Post("/case-summary/:caseId", c.CaseSummary)
	h.Post("/compliance-narrative", c.ComplianceNarrative)
}

func (c *aiController) KeyStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get key status", c.service.KeyStatus()))
}

func (c *aiController) SetKey(ctx *fiber.Ctx) error {
	var req dto.SetKeyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.SetKey(ctx.Context(), req.ApiKey); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save api key", fiber.Map{"status": "saved"}))
}

func (c *aiController) DeleteKey(ctx *fiber.Ctx) error {
	if err := c.service.DeleteKey(); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete api key", fiber.Map{"status": "deleted"}))
}

func (c *aiController) RiskAssessment(ctx *fiber.Ctx) error {
	req, err := c.service.RiskAssessmentPrompt(ctx.Context(), ctx.Params("customerId"))
	if err != nil {
		return err
	}
	return c.streamSSE(ctx, req)
}

func (c *aiController) AlertTriage(ctx *fiber.Ctx) error {
	req, err := c.service.AlertTriagePrompt(ctx.Context(), ctx.Params("alertId"))
	if err != nil {
		return err
	}
	return c.streamSSE(ctx, req)
}

func (c *aiController) CaseSummary(ctx *fiber.Ctx) error {
	req, err := c.service.CaseSummaryPrompt(ctx.Context(), ctx.Params("caseId"))
	if err != nil {
		return err
	}
	return c.streamSSE(ctx, req)
}

func (c *aiController) ComplianceNarrative(ctx *fiber.Ctx) error {
	req, err := c.service.ComplianceNarrativePrompt(ctx.Context())
	if err != nil {
		return err
	}
	return c.streamSSE(ctx, req)
}

// streamSSE pushes model output to the client as server-sent events. Each
// text fragment becomes a data frame, errors become a terminal error frame,
// and the stream always ends with the [DONE] sentinel.
func (c *aiController) streamSSE(ctx *fiber.Ctx, req *service.PromptRequest) error {
	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")
	ctx.Set("X-Accel-Buffering", "no")

	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		// The request context is gone once the handler returns, the
		// stream runs on its own context.
		streamCtx := context.Background()

		err := c.service.Stream(streamCtx, req, func(text string) error {
			data, err := json.Marshal(fiber.Map{"text": text})
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return err
			}
			return w.Flush()
		})
		if err != nil {
			data, _ := json.Marshal(fiber.Map{"error": err.Error()})
			fmt.Fprintf(w, "data: %s\n\n", data)
		}

		fmt.Fprint(w, "data: [DONE]\n\n")
		w.Flush()
	}))

	return nil
}
