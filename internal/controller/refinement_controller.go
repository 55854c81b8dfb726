package controller

import (
	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/pkg/serverutils"
	"brd-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRefinementController interface {
	RegisterRoutes(r fiber.Router)
	InitSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	ClearRefinement(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Accept(ctx *fiber.Ctx) error
}

type refinementController struct {
	refinementService service.IRefinementService
}

func NewRefinementController(refinementService service.IRefinementService) IRefinementController {
	return &refinementController{
		refinementService: refinementService,
	}
}

func (c *refinementController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/refinement/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("session", c.InitSession)
	h.Get("session/:id", c.GetSession)
	h.Post("session/:id/message", c.SendMessage)
	h.Post("session/:id/clear", c.ClearRefinement)
	h.Post("session/:id/accept", c.Accept)
	h.Delete("session/:id", c.Reset)
}

func (c *refinementController) InitSession(ctx *fiber.Ctx) error {
	clientId := ctx.Locals("user_id").(string)

	var req dto.InitSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.refinementService.InitSession(ctx.Context(), clientId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success init session", res))
}

func (c *refinementController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.refinementService.GetSession(ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *refinementController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.refinementService.SendMessage(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *refinementController) ClearRefinement(ctx *fiber.Ctx) error {
	res, err := c.refinementService.ClearRefinement(ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear refinement", res))
}

func (c *refinementController) Reset(ctx *fiber.Ctx) error {
	if err := c.refinementService.Reset(ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success reset session", nil))
}

func (c *refinementController) Accept(ctx *fiber.Ctx) error {
	res, err := c.refinementService.Accept(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success accept refinement", res))
}
