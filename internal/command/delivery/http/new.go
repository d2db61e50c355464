package http

import (
	"hybrid-command-router/internal/command"
	"hybrid-command-router/pkg/log"
)

// Handler is the public interface for the command HTTP delivery layer.
type Handler interface {
	Process(c interface{})
	ProcessAudio(c interface{})
	Statistics(c interface{})
	State(c interface{})
	Reset(c interface{})
}

type handler struct {
	l  log.Logger
	uc command.UseCase
}

// New creates a new HTTP handler for the command domain.
func New(l log.Logger, uc command.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
