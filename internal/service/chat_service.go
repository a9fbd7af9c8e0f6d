package service

import (
	"context"
	"errors"
	"strings"

	"dental-assistant-be/internal/dto"
	"dental-assistant-be/internal/entity"
	"dental-assistant-be/internal/pkg/logger"
	"dental-assistant-be/internal/pkg/serverutils"
	"dental-assistant-be/internal/repository/contract"
	"dental-assistant-be/internal/repository/specification"
	"dental-assistant-be/internal/repository/unitofwork"
	"dental-assistant-be/pkg/assistant"
	"dental-assistant-be/pkg/events"
)

const (
	defaultHistoryLimit = 50

	EventChatMessageSent    = "CHAT_MESSAGE_SENT"
	EventChatHistoryCleared = "CHAT_HISTORY_CLEARED"
)

type IChatService interface {
	History(ctx context.Context, patientId uint, limit int) (*dto.ChatHistoryResponse, error)
	Send(ctx context.Context, userId uint, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	DeleteHistory(ctx context.Context, patientId uint) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	aiClient   assistant.Client
	publisher  IPublisherService
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	aiClient assistant.Client,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		aiClient:   aiClient,
		publisher:  publisher,
		log:        log,
	}
}

func (s *chatService) History(ctx context.Context, patientId uint, limit int) (*dto.ChatHistoryResponse, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByID{ID: patientId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, serverutils.NewNotFoundError("Patient")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByPatientID{PatientID: patientId},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.Limit{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		result[i] = toChatMessageResponse(m)
	}

	return &dto.ChatHistoryResponse{
		Patient: dto.ChatPatientSummary{
			Id:   patient.Id,
			Name: patient.Name,
		},
		Messages: result,
	}, nil
}

func (s *chatService) Send(ctx context.Context, userId uint, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, serverutils.NewValidationError("message", "Message is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByID{ID: req.PatientId})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, serverutils.NewNotFoundError("Patient")
	}

	repo := uow.ChatMessageRepository()

	userMessage := entity.ChatMessage{
		PatientId: patient.Id,
		UserId:    &userId,
		Message:   text,
		Role:      entity.MessageRoleUser,
	}
	if err := repo.Create(ctx, &userMessage); err != nil {
		// Lost a race with a patient delete; report it as the delete winning.
		if errors.Is(err, contract.ErrForeignKeyViolation) {
			return nil, serverutils.NewNotFoundError("Patient")
		}
		return nil, err
	}

	reply := s.aiClient.Generate(ctx, text, assistant.PatientContext{
		Name:         patient.Name,
		Email:        patient.Email,
		Phone:        patient.Phone,
		DateOfBirth:  formatDate(patient.DateOfBirth),
		MedicalNotes: patient.MedicalNotes,
	})

	aiMessage := entity.ChatMessage{
		PatientId: patient.Id,
		UserId:    &userId,
		Message:   reply.Text,
		Role:      entity.MessageRoleAssistant,
	}
	if err := repo.Create(ctx, &aiMessage); err != nil {
		if errors.Is(err, contract.ErrForeignKeyViolation) {
			return nil, serverutils.NewNotFoundError("Patient")
		}
		return nil, err
	}

	s.publish(ctx, EventChatMessageSent, map[string]interface{}{
		"patient_id":      patient.Id,
		"user_id":         userId,
		"fallback":        reply.Fallback,
		"fallback_reason": reply.Reason,
	})

	return &dto.SendMessageResponse{
		UserMessage:    toChatMessageResponse(&userMessage),
		AiMessage:      toChatMessageResponse(&aiMessage),
		Fallback:       reply.Fallback,
		FallbackReason: reply.Reason,
	}, nil
}

func (s *chatService) DeleteHistory(ctx context.Context, patientId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// No existence check: clearing an unknown patient's history is a no-op
	// and still reports success.
	if err := uow.ChatMessageRepository().DeleteByPatientId(ctx, patientId); err != nil {
		return err
	}

	s.publish(ctx, EventChatHistoryCleared, map[string]interface{}{
		"patient_id": patientId,
	})

	return nil
}

func (s *chatService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewBaseEvent(eventType, data)); err != nil {
		s.log.Warn("chat", "failed to publish audit event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func toChatMessageResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        m.Id,
		Message:   m.Message,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
	}
}
