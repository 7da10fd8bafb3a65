package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"thrapy-be/internal/constant"
	"thrapy-be/internal/dto"
	"thrapy-be/internal/entity"
	"thrapy-be/internal/pkg/apperror"
	"thrapy-be/internal/repository/contract"
	"thrapy-be/internal/repository/specification"
	"thrapy-be/pkg/llm"
)

const chatHistoryLimit = 1000

type IChatbotService interface {
	SendChat(ctx context.Context, caller *entity.User, req *dto.ChatMessageRequest) (*dto.ChatResponse, error)
	GetChatHistory(ctx context.Context, caller *entity.User, sessionId string) ([]*entity.ChatHistoryEntry, error)
}

type chatbotService struct {
	sessionRepo contract.SessionRepository
	historyRepo contract.ChatHistoryRepository
	llmProvider llm.LLMProvider
}

func NewChatbotService(
	sessionRepo contract.SessionRepository,
	historyRepo contract.ChatHistoryRepository,
	llmProvider llm.LLMProvider,
) IChatbotService {
	return &chatbotService{
		sessionRepo: sessionRepo,
		historyRepo: historyRepo,
		llmProvider: llmProvider,
	}
}

func (s *chatbotService) SendChat(ctx context.Context, caller *entity.User, req *dto.ChatMessageRequest) (*dto.ChatResponse, error) {
	// One lookup covers existence, ownership and type, so a foreign or
	// non-AI session is indistinguishable from a missing one.
	session, err := s.sessionRepo.FindOne(ctx,
		specification.ById{Id: req.SessionId},
		specification.ByUserId{UserId: caller.Id},
		specification.BySessionType{SessionType: entity.SessionTypeAI},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("AI session not found")
	}

	response, err := s.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: constant.TherapistSystemPrompt},
			{Role: "user", Content: req.Message},
		},
		llm.WithConversation(req.SessionId),
	)
	if err != nil {
		return nil, apperror.Upstream("AI chat error: " + err.Error())
	}

	entry := &entity.ChatHistoryEntry{
		Id:          uuid.NewString(),
		SessionId:   req.SessionId,
		UserId:      caller.Id,
		UserMessage: req.Message,
		AiResponse:  response,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Response:  response,
		SessionId: req.SessionId,
	}, nil
}

func (s *chatbotService) GetChatHistory(ctx context.Context, caller *entity.User, sessionId string) ([]*entity.ChatHistoryEntry, error) {
	session, err := s.sessionRepo.FindOne(ctx,
		specification.ById{Id: sessionId},
		specification.ByUserId{UserId: caller.Id},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("Session not found")
	}

	return s.historyRepo.FindAll(ctx, chatHistoryLimit, specification.BySessionId{SessionId: sessionId})
}
