package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"hybrid-command-router/internal/command"
	"hybrid-command-router/internal/model"
)

const maxAudioBytes = 10 << 20 // 10 MiB

// processProcessReq binds and validates the process command request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAudioReq reads the raw audio body. Scope comes from query
// parameters since the body is the audio itself.
func (h *handler) processAudioReq(c *gin.Context) (command.AudioInput, model.Scope, error) {
	audio, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAudioBytes+1))
	if err != nil {
		return command.AudioInput{}, model.Scope{}, err
	}
	if len(audio) == 0 {
		return command.AudioInput{}, model.Scope{}, errors.New("audio body is required")
	}
	if len(audio) > maxAudioBytes {
		return command.AudioInput{}, model.Scope{}, errors.New("audio body too large")
	}

	sc := model.Scope{
		UserID:    c.Query("user_id"),
		SessionID: c.Query("session_id"),
	}
	return command.AudioInput{Audio: audio}, sc, nil
}
