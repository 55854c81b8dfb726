package controller

import (
	"strconv"

	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/pkg/serverutils"
	"brd-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBrdController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	RenderSection(ctx *fiber.Ctx) error
	UpdateSection(ctx *fiber.Ctx) error
	UpdateConflictStatus(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type brdController struct {
	brdService service.IBrdService
}

func NewBrdController(brdService service.IBrdService) IBrdController {
	return &brdController{
		brdService: brdService,
	}
}

func (c *brdController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/brd/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":id", c.Show)
	h.Get(":id/export", c.Export)
	h.Get(":id/section/:key/render", c.RenderSection)
	h.Patch(":id/section/:key", c.UpdateSection)
	h.Patch(":id/conflict/:position/status", c.UpdateConflictStatus)
}

func (c *brdController) Show(ctx *fiber.Ctx) error {
	brdId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid brd id")
	}

	res, err := c.brdService.Show(ctx.Context(), brdId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show brd", res))
}

func (c *brdController) RenderSection(ctx *fiber.Ctx) error {
	brdId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid brd id")
	}

	res, err := c.brdService.RenderSection(ctx.Context(), brdId, ctx.Params("key"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render section", res))
}

func (c *brdController) UpdateSection(ctx *fiber.Ctx) error {
	brdId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid brd id")
	}

	var req dto.UpdateSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.brdService.UpdateSection(ctx.Context(), brdId, ctx.Params("key"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update section", res))
}

func (c *brdController) UpdateConflictStatus(ctx *fiber.Ctx) error {
	brdId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid brd id")
	}

	position, err := strconv.Atoi(ctx.Params("position"))
	if err != nil || position < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid conflict position")
	}

	var req dto.UpdateConflictStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.brdService.UpdateConflictStatus(ctx.Context(), brdId, position, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update conflict status", nil))
}

func (c *brdController) Export(ctx *fiber.Ctx) error {
	brdId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid brd id")
	}

	res, err := c.brdService.Export(ctx.Context(), brdId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success export brd", res))
}
