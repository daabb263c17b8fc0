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

type INoteController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	service  service.INoteService
	resolver identity.Resolver
}

func NewNoteController(service service.INoteService, resolver identity.Resolver) INoteController {
	return &noteController{service: service, resolver: resolver}
}

func (c *noteController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/notebooks/:notebookId/notes")
	h.Use(authMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:noteId", c.Show)
	h.Put("/:noteId", c.Update)
	h.Delete("/:noteId", c.Delete)
}

func (c *noteController) callerID(ctx *fiber.Ctx) (string, error) {
	return c.resolver.ResolveCallerID(serverutils.RequestClaims(ctx))
}

func noteIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("noteId")
	if err != nil || id < 1 {
		return 0, apperr.ErrNotFound
	}
	return uint(id), nil
}

func (c *noteController) GetAll(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	notebookId, err := notebookIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), userId, notebookId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	notebookId, err := notebookIdParam(ctx)
	if err != nil {
		return err
	}

	noteId, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), userId, notebookId, noteId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	notebookId, err := notebookIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewFieldError("content", "request body must be valid JSON")
	}
	req.NotebookId = notebookId

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("/api/notebooks/%d/notes/%d", notebookId, res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	notebookId, err := notebookIdParam(ctx)
	if err != nil {
		return err
	}

	noteId, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.NewFieldError("content", "request body must be valid JSON")
	}
	req.Id = noteId
	req.NotebookId = notebookId

	res, err := c.service.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId, err := c.callerID(ctx)
	if err != nil {
		return err
	}

	notebookId, err := notebookIdParam(ctx)
	if err != nil {
		return err
	}

	noteId, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), userId, notebookId, noteId); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
