package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/glintgl/glint/lib/config"
	"github.com/glintgl/glint/lib/metrics"
	"github.com/glintgl/glint/lib/rendering"
	"github.com/glintgl/glint/lib/stats"
)

type Api struct {
	srv     http.Server
	mux     *http.ServeMux
	cfg     *config.ApiCfg
	fullCfg *config.Config
	painter *rendering.Painter
	log     *slog.Logger

	Stats *stats.Stats

	wsMutex   sync.Mutex
	wsClients map[*websocket.Conn]bool
}

func New(cfg *config.ApiCfg, fullCfg *config.Config, painter *rendering.Painter) *Api {
	a := &Api{}
	a.cfg = cfg
	a.fullCfg = fullCfg
	a.painter = painter
	a.mux = http.NewServeMux()
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.log = slog.Default().With("module", "api")
	a.Stats = stats.New()

	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/config", a.getConfig)
	a.mux.HandleFunc("/api/uniform", a.handleUniform)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	return a
}

// ServeInBackground starts the API server on its own goroutine and returns
// immediately. Serve errors are logged, not fatal.
func ServeInBackground(cfg *config.ApiCfg, fullCfg *config.Config, painter *rendering.Painter) *Api {
	a := New(cfg, fullCfg, painter)
	go func() {
		err := a.Serve()
		if err != nil && err != http.ErrServerClosed {
			a.log.Error("api server stopped: " + err.Error())
		}
	}()
	a.log.Info(fmt.Sprintf("api listening on %s", cfg.Bind))
	return a
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

// Handler exposes the mux for tests.
func (a *Api) Handler() http.Handler {
	return a.mux
}

// @Summary	Current frame statistics
// @Router		/api/stats [get]
// @Produce	json
// @Tags		base
// @Success	200
func (a *Api) getStats(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
	}
}

// @Summary	The loaded configuration
// @Router		/api/config [get]
// @Produce	json
// @Tags		base
// @Success	200
func (a *Api) getConfig(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(a.fullCfg)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode config: %s", err), http.StatusInternalServerError)
	}
}

type UniformReq struct {
	Name  string    `json:"name"`
	Kind  string    `json:"kind"`
	Value []float32 `json:"value"`
}

// @Summary	Queue a uniform write for the next frame
// @Router		/api/uniform [post]
// @Accept		json
// @Tags		base
// @Success	202
// @Failure	400
func (a *Api) handleUniform(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "only POST is supported", http.StatusMethodNotAllowed)
		return
	}

	var uniformReq UniformReq
	err := json.NewDecoder(req.Body).Decode(&uniformReq)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not decode json request: %s", err), http.StatusBadRequest)
		return
	}

	kind, err := rendering.ParseUniformKind(uniformReq.Kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	want, _ := kind.Components()
	if len(uniformReq.Value) != want {
		http.Error(w, fmt.Sprintf("%s needs %d components, got %d", uniformReq.Kind, want, len(uniformReq.Value)), http.StatusBadRequest)
		return
	}

	a.painter.QueueUniform(rendering.UniformWrite{
		Name:  uniformReq.Name,
		Kind:  kind,
		Value: uniformReq.Value,
	})
	w.WriteHeader(http.StatusAccepted)
}

// @Summary	Capture a 30 second CPU profile
// @Router		/prof [get]
// @Tags		debug
// @Success	200
func (a *Api) profileCPU(w http.ResponseWriter, req *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not start profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(30 * time.Second)
	pprof.StopCPUProfile()
}
