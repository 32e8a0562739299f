package stats

import (
	"sync"
	"time"

	"github.com/glintgl/glint/lib/rendering"
)

// Snapshot is the stats shape served over the api.
type Snapshot struct {
	Frames         uint64  `json:"frames"`
	DrawCalls      uint64  `json:"draw_calls"`
	BufferUpload   uint64  `json:"buffer_upload_bytes"`
	Uptime         float64 `json:"uptime"`
	FPS            uint64  `json:"fps"`
	ShaderRebuilds uint64  `json:"shader_rebuilds"`
	WsClients      int     `json:"ws_clients"`
}

// Stats collects per-frame numbers on the render thread while the api reads
// them from its own goroutines, so everything goes through the mutex.
type Stats struct {
	mu   sync.Mutex
	snap Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	return s
}

// Update runs once per rendered frame on the render thread.
func (s *Stats) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frameCounter++
	if time.Since(s.frameTimer) > 1*time.Second {
		s.snap.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
	}

	s.snap.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
	s.snap.Frames = rendering.FrameCounter
	s.snap.DrawCalls = rendering.DrawCallCounter
	s.snap.BufferUpload = rendering.BufferUploadCounter
}

func (s *Stats) RecordShaderRebuild() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ShaderRebuilds++
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.WsClients = n
}

// Snapshot returns a consistent copy for serialisation.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
