package service

import (
	"context"
	"fmt"
	"time"

	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/apperror"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/internal/repository/memory"
	"mentorlink-be/pkg/llm"
	"mentorlink-be/pkg/store"

	"github.com/gomarkdown/markdown"
)

const emptyReplyFallback = "Sorry, I didn't get a response from the AI."

type IChatbotService interface {
	SendChat(ctx context.Context, sessionID string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatbotService struct {
	llmProvider llm.LLMProvider
	ledger      *memory.ConversationRepository
	timeout     time.Duration
	logger      logger.ILogger
}

func NewChatbotService(
	llmProvider llm.LLMProvider,
	ledger *memory.ConversationRepository,
	timeout time.Duration,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		llmProvider: llmProvider,
		ledger:      ledger,
		timeout:     timeout,
		logger:      log,
	}
}

// SendChat appends the user turn to the session's ledger, sends the whole
// history as context, and returns the reply rendered from markdown to HTML.
// Only user turns are stored; assistant replies are returned, not appended.
func (cs *chatbotService) SendChat(ctx context.Context, sessionID string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	cs.ledger.Append(sessionID, store.ConversationEntry{
		Role:    store.RoleUser,
		Content: req.Message,
	})

	history := cs.ledger.History(sessionID)
	messages := make([]llm.Message, len(history))
	for i, entry := range history {
		messages[i] = llm.Message{
			Role:    entry.Role,
			Content: entry.Content,
		}
	}

	// The upstream call is bounded; a hung provider must not pin the request.
	callCtx, cancel := context.WithTimeout(ctx, cs.timeout)
	defer cancel()

	reply, err := cs.llmProvider.Chat(callCtx, messages)
	if err != nil {
		cs.logger.Error("chatbot", "upstream chat call failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil, apperror.Upstream("Failed to contact AI.", err)
	}

	if reply == "" {
		reply = emptyReplyFallback
	}

	return &dto.SendChatResponse{
		Response: cs.renderMarkdown(reply),
	}, nil
}

// renderMarkdown converts the reply to HTML; if rendering blows up, the raw
// text is wrapped in a paragraph instead.
func (cs *chatbotService) renderMarkdown(raw string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			cs.logger.Warn("chatbot", "markdown rendering failed", map[string]interface{}{
				"panic": fmt.Sprint(r),
			})
			out = "<p>" + raw + "</p>"
		}
	}()
	return string(markdown.ToHTML([]byte(raw), nil, nil))
}
