package http

import (
	"github.com/MGhunch/dot-hub-api/internal/assistant"
	"github.com/MGhunch/dot-hub-api/internal/model"
)

// --- Request DTOs ---

type clientRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type askReq struct {
	Question  string      `json:"question"`
	Clients   []clientRef `json:"clients"`
	SessionID string      `json:"session_id"`
}

func (r askReq) validate() error {
	if r.Question == "" {
		return assistant.ErrEmptyQuestion
	}
	return nil
}

func (r askReq) toInput() assistant.AskInput {
	clients := make([]model.ClientRef, len(r.Clients))
	for i, c := range r.Clients {
		clients[i] = model.ClientRef{Code: c.Code, Name: c.Name}
	}
	return assistant.AskInput{
		Question:  r.Question,
		Clients:   clients,
		SessionID: r.SessionID,
	}
}

type clearSessionReq struct {
	SessionID string `json:"session_id"`
}

// --- Response DTOs ---

type askResp struct {
	Parsed    assistant.StructuredResponse `json:"parsed"`
	SessionID string                       `json:"sessionId"`
}

func newAskResp(out assistant.AskOutput) askResp {
	return askResp{
		Parsed:    out.Parsed,
		SessionID: out.SessionID,
	}
}

type clearSessionResp struct {
	Status string `json:"status"`
}

type errorResp struct {
	Error string `json:"error"`
}
