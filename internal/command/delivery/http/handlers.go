package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hybrid-command-router/internal/command"
	"hybrid-command-router/pkg/response"
)

// Process godoc
// @Summary     Process a text command
// @Description Classifies the command, routes it to on-device, server or hybrid processing, and returns the answer.
// @Tags        Command
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Command text and caller scope"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - a command is already in progress"
// @Failure     422 {object} response.Resp "Unprocessable - no handler could answer"
// @Failure     502 {object} response.Resp "Bad Gateway - server processing failed"
// @Router      /api/v1/commands [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err, nil)
		return
	}

	output, err := h.uc.ProcessText(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessText: %v", err)
		response.Error(c, statusFor(err), err, gin.H{"apology": command.Apology(err)})
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// ProcessAudio godoc
// @Summary     Process a voice command
// @Description Transcribes the audio body, then processes the resulting text command.
// @Tags        Command
// @Accept      octet-stream
// @Produce     json
// @Param       user_id    query string false "Caller user ID"
// @Param       session_id query string false "Conversation session ID"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - a command is already in progress"
// @Failure     422 {object} response.Resp "Unprocessable - transcription or handling failed"
// @Router      /api/v1/commands/audio [POST]
func (h *handler) ProcessAudio(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processAudioReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err, nil)
		return
	}

	output, err := h.uc.ProcessAudio(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessAudio: %v", err)
		response.Error(c, statusFor(err), err, gin.H{"apology": command.Apology(err)})
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// Statistics godoc
// @Summary     Command statistics
// @Description Returns running counters and averages over processed commands.
// @Tags        Command
// @Produce     json
// @Success     200 {object} statisticsResp
// @Router      /api/v1/statistics [GET]
func (h *handler) Statistics(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, statisticsResp{Statistics: h.uc.Statistics(ctx)})
}

// State godoc
// @Summary     Pipeline state
// @Description Reports where the pipeline currently is (idle, executing, error, ...).
// @Tags        Command
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/state [GET]
func (h *handler) State(c *gin.Context) {
	response.OK(c, stateResp{State: string(h.uc.State())})
}

// Reset godoc
// @Summary     Reset the pipeline
// @Description Forces the pipeline back to idle from a terminal state.
// @Tags        Command
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	h.uc.Reset()
	response.OK(c, stateResp{State: string(h.uc.State())})
}
