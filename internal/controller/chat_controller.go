package controller

import (
	"dental-assistant-be/internal/dto"
	"dental-assistant-be/internal/pkg/serverutils"
	"dental-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	History(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	DeleteHistory(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":patientId", c.History)
	h.Post("", c.Send)
	h.Delete(":patientId", c.DeleteHistory)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	patientId, err := parsePatientId(ctx.Params("patientId"))
	if err != nil {
		return err
	}
	limit := ctx.QueryInt("limit", 0)

	res, err := c.service.History(ctx.Context(), patientId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch chat history", res))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("patientId", "Valid patient ID is required")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message sent successfully", res))
}

func (c *chatController) DeleteHistory(ctx *fiber.Ctx) error {
	patientId, err := parsePatientId(ctx.Params("patientId"))
	if err != nil {
		return err
	}

	if err := c.service.DeleteHistory(ctx.Context(), patientId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Chat history deleted successfully", nil))
}
