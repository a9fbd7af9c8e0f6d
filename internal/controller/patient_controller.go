package controller

import (
	"strconv"

	"dental-assistant-be/internal/dto"
	"dental-assistant-be/internal/pkg/serverutils"
	"dental-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPatientController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type patientController struct {
	service service.IPatientService
}

func NewPatientController(service service.IPatientService) IPatientController {
	return &patientController{service: service}
}

func (c *patientController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/patients")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.GetById)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *patientController) List(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	search := ctx.Query("search")

	res, err := c.service.List(ctx.Context(), page, limit, search)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch patients", res))
}

func (c *patientController) GetById(ctx *fiber.Ctx) error {
	id, err := parsePatientId(ctx.Params("id"))
	if err != nil {
		return err
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch patient", res))
}

func (c *patientController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.CreatePatientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("body", "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Patient created successfully", res))
}

func (c *patientController) Update(ctx *fiber.Ctx) error {
	id, err := parsePatientId(ctx.Params("id"))
	if err != nil {
		return err
	}

	var req dto.UpdatePatientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("body", "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Patient updated successfully", res))
}

func (c *patientController) Delete(ctx *fiber.Ctx) error {
	id, err := parsePatientId(ctx.Params("id"))
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Patient deleted successfully", nil))
}

func parsePatientId(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, serverutils.NewValidationError("id", "Valid patient ID is required")
	}
	return uint(id), nil
}
