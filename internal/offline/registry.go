package offline

import (
	"fmt"
	"time"

	"hybrid-command-router/internal/device"
	"hybrid-command-router/internal/model"
	"hybrid-command-router/pkg/datemath"
)

// Registry is the closed intent-to-handler mapping. Handlers are
// registered once at construction; there is no open registration API.
type Registry struct {
	handlers map[model.Intent]Handler
}

// Deps are the collaborators the built-in handlers need.
type Deps struct {
	Device device.Reader
	Dates  *datemath.Parser
	Clock  func() time.Time // defaults to time.Now
}

// NewRegistry builds the fixed handler set: time/date, calculation,
// device control, the email decline stub, and general chit-chat.
func NewRegistry(deps Deps) (*Registry, error) {
	if deps.Device == nil {
		return nil, fmt.Errorf("device reader is required")
	}
	if deps.Dates == nil {
		return nil, fmt.Errorf("date parser is required")
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	handlers := []Handler{
		NewTimeHandler(deps.Clock, deps.Dates),
		NewCalculationHandler(),
		NewDeviceControlHandler(deps.Device),
		NewEmailStubHandler(),
		NewGeneralHandler(),
	}

	r := &Registry{handlers: make(map[model.Intent]Handler, len(handlers))}
	for _, h := range handlers {
		r.handlers[h.Intent()] = h
	}
	return r, nil
}

// ForIntent returns the handler for an intent, or ErrNoHandler.
func (r *Registry) ForIntent(in model.Intent) (Handler, error) {
	h, ok := r.handlers[in]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, in)
	}
	return h, nil
}

// Intents lists the registered intents in the fixed category order.
func (r *Registry) Intents() []model.Intent {
	var out []model.Intent
	for _, in := range model.AllIntents {
		if _, ok := r.handlers[in]; ok {
			out = append(out, in)
		}
	}
	return out
}
