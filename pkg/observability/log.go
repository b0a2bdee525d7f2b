package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug log lines.
// The CLI registers it when --verbose is set.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l}
}

// Register installs h for all event categories.
func (h *LogHooks) Register() {
	SetAnimationHooks(h)
	SetCaptureHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnPhase(_ context.Context, combination int, from, to string) {
	h.logger.Debug("phase", "combination", combination, "from", from, "to", to)
}

func (h *LogHooks) OnPreview(_ context.Context, combination, frame int) {
	h.logger.Debug("preview", "combination", combination, "frame", frame)
}

func (h *LogHooks) OnKioskCommit(_ context.Context, from, to int) {
	h.logger.Debug("kiosk", "from", from, "to", to)
}

func (h *LogHooks) OnFailure(_ context.Context, combination int, err error) {
	h.logger.Error("animation frozen", "combination", combination, "err", err)
}

func (h *LogHooks) OnCaptureStart(_ context.Context, combination int) {
	h.logger.Debug("capture start", "combination", combination)
}

func (h *LogHooks) OnCaptureComplete(_ context.Context, combination, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("capture failed", "combination", combination, "err", err)
		return
	}
	h.logger.Debug("capture done", "combination", combination, "bytes", size, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnCacheHit(_ context.Context, backend string) {
	h.logger.Debug("cache hit", "backend", backend)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, backend string) {
	h.logger.Debug("cache miss", "backend", backend)
}

func (h *LogHooks) OnCacheSet(_ context.Context, backend string, size int) {
	h.logger.Debug("cache set", "backend", backend, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status, "took", d.Round(time.Microsecond))
}

var (
	_ AnimationHooks = (*LogHooks)(nil)
	_ CaptureHooks   = (*LogHooks)(nil)
	_ CacheHooks     = (*LogHooks)(nil)
	_ HTTPHooks      = (*LogHooks)(nil)
)
