package command

import (
	"time"

	"hybrid-command-router/internal/model"
)

type ProcessInput struct {
	Text string
}

type AudioInput struct {
	Audio []byte
}

type ProcessOutput struct {
	CommandID    string
	ResponseText string
	Audio        []byte

	Intent     model.Intent
	Confidence float64
	Method     model.ProcessingMethod
	WasOffline bool

	RoutingExplanation string
	MergeStrategy      string

	Elapsed     time.Duration
	Transitions []model.StateTransition
}
