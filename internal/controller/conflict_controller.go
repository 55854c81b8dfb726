package controller

import (
	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/pkg/serverutils"
	"brd-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConflictController interface {
	RegisterRoutes(r fiber.Router)
	ResolveWithAI(ctx *fiber.Ctx) error
	ConfirmWithoutEdit(ctx *fiber.Ctx) error
}

type conflictController struct {
	conflictService service.IConflictService
}

func NewConflictController(conflictService service.IConflictService) IConflictController {
	return &conflictController{
		conflictService: conflictService,
	}
}

func (c *conflictController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conflict/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("resolve-with-ai", c.ResolveWithAI)
	h.Post("confirm-without-edit", c.ConfirmWithoutEdit)
}

func (c *conflictController) ResolveWithAI(ctx *fiber.Ctx) error {
	clientId := ctx.Locals("user_id").(string)

	var req dto.ResolveWithAIRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conflictService.ResolveWithAI(ctx.Context(), clientId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start conflict resolution", res))
}

func (c *conflictController) ConfirmWithoutEdit(ctx *fiber.Ctx) error {
	var req dto.ConfirmWithoutEditRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conflictService.ConfirmWithoutEdit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success confirm without edit", res))
}
