package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MGhunch/dot-hub-api/internal/assistant"
	"github.com/MGhunch/dot-hub-api/internal/model"
	"github.com/MGhunch/dot-hub-api/pkg/anthropic"
)

const (
	// maxHistoryTurns caps how many stored turns are replayed to the
	// model each question.
	maxHistoryTurns = 10

	// summaryMaxChars caps the assistant turn committed to session
	// memory. Full replies can run long; memory only needs the gist.
	summaryMaxChars = 100
)

// ProcessQuestion drives one conversational turn end to end. Session
// memory is only committed after the model round-trip succeeds, so a
// failed turn leaves history untouched.
func (uc *implUseCase) ProcessQuestion(ctx context.Context, input assistant.AskInput) (assistant.AskOutput, error) {
	if input.Question == "" {
		return assistant.AskOutput{}, assistant.ErrEmptyQuestion
	}
	if !uc.llm.Configured() {
		return assistant.AskOutput{}, assistant.ErrNotConfigured
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history := uc.store.Get(sessionID)
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	system := BuildSystemPrompt(input.Clients, contextHint(history))
	messages := make([]anthropic.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, anthropic.NewTextMessage(string(turn.Role), turn.Content))
	}
	messages = append(messages, anthropic.NewTextMessage(anthropic.RoleUser, input.Question))

	resp, err := uc.llm.CreateMessage(ctx, &anthropic.MessagesRequest{
		MaxTokens: uc.maxTokens,
		System:    system,
		Messages:  messages,
		Tools:     uc.registry.ToToolDeclarations(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ProcessQuestion.CreateMessage: %v", err)
		return assistant.AskOutput{}, err
	}

	if resp.StopReason == anthropic.StopReasonToolUse {
		resp, err = uc.runToolRound(ctx, system, messages, resp)
		if err != nil {
			uc.l.Errorf(ctx, "assistant.usecase.ProcessQuestion.runToolRound: %v", err)
			return assistant.AskOutput{}, err
		}
	}

	// A reply with no text block degrades like any unparseable reply:
	// the contract shape still comes back, with an empty message.
	text := resp.FirstText()
	if text == "" {
		uc.l.Warnf(ctx, "assistant.usecase.ProcessQuestion: no text in reply, stop_reason %q", resp.StopReason)
	}

	parsed, ok := ParseStructured(text)
	if !ok {
		uc.l.Warnf(ctx, "assistant.usecase.ProcessQuestion: reply did not parse, returning raw text")
	}

	uc.store.Append(sessionID, model.RoleUser, input.Question)
	uc.store.Append(sessionID, model.RoleAssistant, truncate(parsed.Message, summaryMaxChars))

	return assistant.AskOutput{SessionID: sessionID, Parsed: parsed}, nil
}

// ClearSession forgets a session's history. Unknown sessions are a
// no-op.
func (uc *implUseCase) ClearSession(ctx context.Context, sessionID string) {
	uc.store.Clear(sessionID)
	uc.l.Debugf(ctx, "assistant.usecase.ClearSession: cleared %q", sessionID)
}

// runToolRound executes every tool call the model requested and asks
// for a final answer. Tools run once per turn: the follow-up request
// deliberately omits tool declarations so the model cannot chain
// further calls.
func (uc *implUseCase) runToolRound(
	ctx context.Context,
	system string,
	messages []anthropic.Message,
	resp *anthropic.MessagesResponse,
) (*anthropic.MessagesResponse, error) {
	results := make([]anthropic.ContentBlock, 0, len(resp.Content))
	for _, block := range resp.Content {
		if block.Type != anthropic.BlockTypeToolUse {
			continue
		}
		results = append(results, anthropic.NewToolResultBlock(block.ID, uc.executeTool(ctx, block)))
	}

	messages = append(messages,
		anthropic.Message{Role: anthropic.RoleAssistant, Content: resp.Content},
		anthropic.Message{Role: anthropic.RoleUser, Content: results},
	)

	return uc.llm.CreateMessage(ctx, &anthropic.MessagesRequest{
		MaxTokens: uc.maxTokens,
		System:    system,
		Messages:  messages,
	})
}

// executeTool runs one requested tool call and renders its outcome as
// the JSON payload for a tool_result block. Failures, including
// requests for unknown tools, become an {error: reason} payload so the
// model can explain the problem instead of the turn aborting.
func (uc *implUseCase) executeTool(ctx context.Context, block anthropic.ContentBlock) string {
	tool, ok := uc.registry.Get(block.Name)
	if !ok {
		uc.l.Warnf(ctx, "assistant.usecase.executeTool: unknown tool %q", block.Name)
		return toolErrorPayload(fmt.Sprintf("unknown tool: %s", block.Name))
	}

	result, err := tool.Execute(ctx, block.Input)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.executeTool: %s: %v", block.Name, err)
		return toolErrorPayload(err.Error())
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return toolErrorPayload(err.Error())
	}
	uc.l.Debugf(ctx, "assistant.usecase.executeTool: %s ok", block.Name)
	return string(payload)
}

func toolErrorPayload(reason string) string {
	payload, _ := json.Marshal(map[string]string{"error": reason})
	return string(payload)
}

// contextHint tells the model whether it is mid-conversation.
func contextHint(history []model.Turn) string {
	if len(history) == 0 {
		return ""
	}
	return fmt.Sprintf("This is an ongoing conversation. The last %d exchanges are included as messages - use them to resolve references like \"that client\" or \"the second one\".", len(history))
}

// truncate caps s at max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
