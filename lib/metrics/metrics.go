package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_frames_rendered_total",
		Help: "Total number of frames rendered",
	})
	DrawCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_draw_calls_total",
		Help: "Total number of indexed draw calls issued",
	})
	ShaderBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_shader_builds_total",
		Help: "Total number of successful shader program builds",
	})
	ShaderBuildFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_shader_build_failures_total",
		Help: "Total number of failed shader program builds",
	})
	BufferUploadBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_buffer_upload_bytes_total",
		Help: "Total number of bytes uploaded into GPU buffers",
	})
	UniformWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_uniform_writes_total",
		Help: "Total number of uniform values written",
	})
)

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
