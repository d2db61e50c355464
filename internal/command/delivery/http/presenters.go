package http

import (
	"hybrid-command-router/internal/command"
	"hybrid-command-router/internal/model"
)

// --- Request DTOs ---

type processReq struct {
	Text      string `json:"text"       binding:"required,min=1,max=2000"`
	UserID    string `json:"user_id"    binding:"max=128"`
	SessionID string `json:"session_id" binding:"max=128"`
}

func (r processReq) validate() error { return nil }

func (r processReq) toInput() command.ProcessInput {
	return command.ProcessInput{Text: r.Text}
}

func (r processReq) toScope() model.Scope {
	return model.Scope{UserID: r.UserID, SessionID: r.SessionID}
}

// --- Response DTOs ---

type transitionResp struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type processResp struct {
	CommandID          string           `json:"command_id"`
	ResponseText       string           `json:"response_text"`
	Audio              []byte           `json:"audio,omitempty"`
	Intent             string           `json:"intent"`
	Confidence         float64          `json:"confidence"`
	Method             string           `json:"method"`
	WasOffline         bool             `json:"was_offline"`
	RoutingExplanation string           `json:"routing_explanation"`
	MergeStrategy      string           `json:"merge_strategy,omitempty"`
	ElapsedMs          int64            `json:"elapsed_ms"`
	Transitions        []transitionResp `json:"transitions"`
}

func (h *handler) newProcessResp(out command.ProcessOutput) processResp {
	transitions := make([]transitionResp, 0, len(out.Transitions))
	for _, tr := range out.Transitions {
		transitions = append(transitions, transitionResp{
			From: string(tr.From),
			To:   string(tr.To),
		})
	}
	return processResp{
		CommandID:          out.CommandID,
		ResponseText:       out.ResponseText,
		Audio:              out.Audio,
		Intent:             string(out.Intent),
		Confidence:         out.Confidence,
		Method:             string(out.Method),
		WasOffline:         out.WasOffline,
		RoutingExplanation: out.RoutingExplanation,
		MergeStrategy:      out.MergeStrategy,
		ElapsedMs:          out.Elapsed.Milliseconds(),
		Transitions:        transitions,
	}
}

type statisticsResp struct {
	Statistics model.ProcessingStatistics `json:"statistics"`
}

type stateResp struct {
	State string `json:"state"`
}
