package controller

import (
	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/pkg/serverutils"
	"brd-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISelectionController interface {
	RegisterRoutes(r fiber.Router)
	PointerDown(ctx *fiber.Ctx) error
	PointerUp(ctx *fiber.Ctx) error
	State(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type selectionController struct {
	selectionService service.ISelectionService
}

func NewSelectionController(selectionService service.ISelectionService) ISelectionController {
	return &selectionController{
		selectionService: selectionService,
	}
}

func (c *selectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/selection/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("pointer-down", c.PointerDown)
	h.Post("pointer-up", c.PointerUp)
	h.Get("state", c.State)
	h.Post("clear", c.Clear)
}

func (c *selectionController) PointerDown(ctx *fiber.Ctx) error {
	clientId := ctx.Locals("user_id").(string)

	var req dto.PointerDownRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.selectionService.PointerDown(clientId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success pointer down", nil))
}

func (c *selectionController) PointerUp(ctx *fiber.Ctx) error {
	clientId := ctx.Locals("user_id").(string)

	var req dto.PointerUpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.selectionService.PointerUp(clientId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success pointer up", nil))
}

func (c *selectionController) State(ctx *fiber.Ctx) error {
	clientId := ctx.Locals("user_id").(string)

	res, err := c.selectionService.State(clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get selection state", res))
}

func (c *selectionController) Clear(ctx *fiber.Ctx) error {
	clientId := ctx.Locals("user_id").(string)

	if err := c.selectionService.Clear(clientId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear selection", nil))
}
