package usecase

import (
	"context"
	"sync"
	"time"

	"hybrid-command-router/config"
	"hybrid-command-router/internal/device"
	"hybrid-command-router/internal/intent"
	"hybrid-command-router/internal/merge"
	"hybrid-command-router/internal/model"
	"hybrid-command-router/internal/offline"
	"hybrid-command-router/internal/routing"
	"hybrid-command-router/internal/stats"
	pkgLog "hybrid-command-router/pkg/log"
	"hybrid-command-router/pkg/remote"
)

const (
	defaultServerConfidence = 0.8
	defaultServerCost       = 1.0
	serverPrivacyScore      = 0.3
)

// remoteSender is the slice of remote.Manager the orchestrator needs.
type remoteSender interface {
	SendCommand(ctx context.Context, req *remote.Request) (*remote.Response, error)
}

// transcriber converts captured audio into text.
type transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	classifier *intent.Classifier
	engine     *routing.Engine
	registry   *offline.Registry
	merger     *merge.Merger
	tracker    *stats.Tracker
	device     device.Reader
	remote     remoteSender
	speech     transcriber

	answers  *answerCache
	sessions *sessionStore

	settings        model.UserSettings
	hybridTimeout   time.Duration
	errorResetDelay time.Duration

	clock func() time.Time

	mu    sync.Mutex
	state model.PipelineState
}

// New creates a command UseCase instance. The routing engine is built
// here so it can probe the answer cache the orchestrator owns.
func New(
	l pkgLog.Logger,
	classifier *intent.Classifier,
	registry *offline.Registry,
	merger *merge.Merger,
	tracker *stats.Tracker,
	deviceReader device.Reader,
	remoteMgr remoteSender,
	speech transcriber,
	cfg config.EngineConfig,
) *implUseCase {
	answers := newAnswerCache(cfg.AnswerCacheSize, cfg.AnswerCacheTTL)

	uc := &implUseCase{
		l:          l,
		classifier: classifier,
		engine:     routing.NewEngine(answers),
		registry:   registry,
		merger:     merger,
		tracker:    tracker,
		device:     deviceReader,
		remote:     remoteMgr,
		speech:     speech,
		answers:    answers,
		sessions:   newSessionStore(cfg.SessionTTL),
		settings: model.UserSettings{
			ConfidenceThreshold: cfg.ConfidenceThreshold,
			OfflineFirst:        cfg.OfflineFirst,
		},
		hybridTimeout:   cfg.HybridTimeout,
		errorResetDelay: cfg.ErrorResetDelay,
		clock:           time.Now,
		state:           model.StateIdle,
	}
	return uc
}
