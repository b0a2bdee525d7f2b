package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/drift/pkg/app"
	"github.com/matzehuels/drift/pkg/cache"
	"github.com/matzehuels/drift/pkg/combination"
	"github.com/matzehuels/drift/pkg/errors"
	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/prng"
)

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) combinations(w http.ResponseWriter, r *http.Request) {
	root, err := features.Slots()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := CombinationsResponse{Total: root.Cardinality(), Seed: s.cfg.Seed}
	combination.Walk(root, func(slot combination.Slot, depth int) bool {
		resp.Slots = append(resp.Slots, SlotResponse{
			Name:        slot.Name(),
			Kind:        slot.Kind().String(),
			Cardinality: slot.Cardinality(),
			Depth:       depth,
		})
		return true
	})
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) features(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	set, err := features.Derive(q.combination, prng.New(q.seed))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, set.Summary())
}

func (s *Server) capture(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ctx := r.Context()

	cfg := *s.cfg
	cfg.Seed = q.seed
	cfg.Combination = &q.combination
	cfg.PauseAfter = 0
	cfg.Kiosk.Enabled = false

	a, err := app.New(&cfg, app.WithContext(ctx), app.WithLogger(s.logger))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	set := a.Set()
	w.Header().Set("Content-Disposition", "inline; filename="+strconv.Quote(set.Filename()))

	pw, ph := a.Size()
	key := cache.CaptureKey(cache.CaptureParams{
		Seed:          q.seed,
		Combination:   set.Combination,
		Frames:        q.frames,
		Limit:         s.maxFrames,
		PreviewFactor: cfg.PreviewFactor,
		Width:         pw,
		Height:        ph,
	})
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("cache get failed", "key", key, "err", err)
	} else if ok {
		s.writePNG(w, data, "hit")
		return
	}

	if q.frames > 0 {
		a.RunFor(q.frames)
	} else if _, err := a.RunUntilPreview(ctx, s.maxFrames); err != nil {
		s.writeError(w, r, err)
		return
	}

	snap, err := a.Capture()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.cache.Set(ctx, key, snap.Data, s.cfg.Cache.TTL); err != nil {
		s.logger.Warn("cache set failed", "key", key, "err", err)
	}
	s.writePNG(w, snap.Data, "miss")
}

type query struct {
	seed        string
	combination int
	frames      int
}

// parseQuery reads combination (required), seed (default from config) and
// frames (0 runs until the preview is ready).
func (s *Server) parseQuery(r *http.Request) (query, error) {
	v := r.URL.Query()
	q := query{seed: v.Get("seed")}
	if q.seed == "" {
		q.seed = s.cfg.Seed
	}
	if err := errors.ValidateSeed(q.seed); err != nil {
		return q, err
	}

	raw := v.Get("combination")
	if raw == "" {
		return q, errors.New(errors.ErrCodeInvalidInput, "combination is required")
	}
	c, err := strconv.Atoi(raw)
	if err != nil {
		return q, errors.New(errors.ErrCodeInvalidInput, "combination must be an integer")
	}
	q.combination = c

	if raw := v.Get("frames"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > s.maxFrames {
			return q, errors.New(errors.ErrCodeInvalidInput, "frames must be an integer between 0 and %d", s.maxFrames)
		}
		q.frames = n
	}
	return q, nil
}

func (s *Server) writePNG(w http.ResponseWriter, data []byte, cacheStatus string) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Cache", cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSeed, errors.ErrCodeInvalidConfiguration, errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeRenderUnavailable:
		status = http.StatusServiceUnavailable
	}

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("internal error", "request_id", requestIDFrom(r.Context()), "err", err)
		if r.Context().Err() != nil {
			msg = "request cancelled"
		} else {
			msg = "internal error"
		}
	}
	w.Header().Del("Content-Disposition")
	s.writeJSON(w, status, ErrorResponse{Error: msg, Code: string(code), RequestID: requestIDFrom(r.Context())})
}
