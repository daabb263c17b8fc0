package controller

import (
	"fmt"

	"wisenotes-be/internal/dto"
	"wisenotes-be/internal/pkg/apperr"
	"wisenotes-be/internal/pkg/identity"
	"wisenotes-be/internal/pkg/serverutils"
	"wisenotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type notebookController struct {
	service  service.INotebookService
	resolver identity.Resolver
}

func NewNotebookController(service service.INotebookService, resolver identity.Resolver) INotebookController {
	return &notebookController{service: service, resolver: resolver}
}

func (c *notebookController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/notebooks")
	h.Use(authMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:notebookId", c.Show)
	h.Put("/:notebookId", c.Update)
	h.Delete("/:notebookId", c.Delete)
}

func (c *notebookController) callerID(ctx *fiber.Ctx) (string, error) {
	return c.resolver.ResolveCallerID(serverutils.RequestClaims(ctx))
}

// notebookIdParam reads the :notebookId path segment. A non-integer id
// cannot name an existing resource, so it behaves as NotFound.
func notebookIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("notebookId")
	if err != nil || id < 1 {
		return 0, apperr.ErrNotFound
	}
	return uint(id), nil
}

func (c *notebookController) GetAll(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *notebookController) Show(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	id, err := notebookIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *notebookController) Create(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewFieldError("title", "request body must be valid JSON")
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("/api/notebooks/%d", res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *notebookController) Update(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	id, err := notebookIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewFieldError("title", "request body must be valid JSON")
	}
	req.Id = id

	if err := c.service.Update(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *notebookController) Delete(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	id, err := notebookIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
