// Package viewer owns the render loop: it builds the window, the GL context,
// the shader program and the shapes from a config, then paints until told to
// stop.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/glintgl/glint/lib/api"
	"github.com/glintgl/glint/lib/config"
	"github.com/glintgl/glint/lib/gfx/gl41"
	"github.com/glintgl/glint/lib/kbdctl"
	"github.com/glintgl/glint/lib/rendering"
	"github.com/glintgl/glint/lib/rendering/shaders"
	"github.com/glintgl/glint/lib/sink/windowsink"
	"github.com/glintgl/glint/lib/stats"
	"github.com/glintgl/glint/lib/utils"
)

// TransformUniform is the per-frame animation matrix the built-in vertex
// shader consumes.
const TransformUniform = "u_transform"

const rotationSpeed = 0.5 // radians per second

type Viewer struct {
	cfg     *config.Config
	glctx   *rendering.Context
	painter *rendering.Painter
	stats   *stats.Stats
	watcher *shaders.Watcher
	log     *slog.Logger

	cancel context.CancelFunc
	reload atomic.Bool

	shaderData *shaders.ShaderData

	angle  float32
	paused bool
}

// MakeWindowAndView runs the whole show. It must be called on the locked
// main thread and returns when the window closes or shutdown is requested.
func MakeWindowAndView(cfg *config.Config) error {
	if len(cfg.Sinks) > 1 {
		// TODO: share one GL context between windows before lifting this
		return fmt.Errorf("multiple window sinks are not supported yet")
	}

	var sinkName string
	for name := range cfg.Sinks {
		sinkName = name
	}

	sink := windowsink.New(sinkName, cfg.Sinks[sinkName])
	sinks := windowsink.Sinks{sinkName: sink}
	if err := sink.Start(); err != nil {
		return &rendering.ContextUnavailableError{Surface: sinkName, Err: err}
	}

	backend, err := gl41.New()
	if err != nil {
		return &rendering.ContextUnavailableError{Surface: sinkName, Err: err}
	}

	glctx, err := rendering.Acquire(sinks, sinkName, backend)
	if err != nil {
		return err
	}

	v := &Viewer{
		cfg:   cfg,
		glctx: glctx,
		log:   slog.Default().With("module", "viewer"),
		shaderData: &shaders.ShaderData{
			FallbackColour: utils.ColourParse(cfg.ClearColour),
		},
	}
	v.log.Info("OpenGL version " + backend.Version())

	sources, err := v.shaderSources()
	if err != nil {
		return fmt.Errorf("could not get shaders: %w", err)
	}
	program, err := shaders.NewProgram(glctx.API, sources.Vertex, sources.Fragment)
	if err != nil {
		return fmt.Errorf("could not init GL program: %w", err)
	}

	shapes := buildShapes(glctx, cfg)
	v.painter = rendering.NewPainter(glctx, program, utils.ColourParse(cfg.ClearColour), shapes)
	v.painter.Tick = v.tick
	v.queueInitialUniforms()

	if cfg.Api != nil {
		apiSrv := api.ServeInBackground(cfg.Api, cfg, v.painter)
		v.stats = apiSrv.Stats
	} else {
		v.stats = stats.New()
	}

	kbdctl.SetupShortcutKeys(v, sink)

	if cfg.Shaders.External() && cfg.Shaders.Watch {
		v.watcher, err = shaders.Watch(cfg.Shaders.VertexFile.String(), cfg.Shaders.FragmentFile.String())
		if err != nil {
			return fmt.Errorf("could not watch shader files: %w", err)
		}
		defer v.watcher.Close()
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	v.cancel = cancel

	err = v.painter.Loop(runCtx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// buildShapes uploads every configured shape, in name order so runs are
// deterministic.
func buildShapes(glctx *rendering.Context, cfg *config.Config) []rendering.Shape {
	var shapes []rendering.Shape
	for _, name := range slices.Sorted(maps.Keys(cfg.Shapes)) {
		shapeCfg := cfg.Shapes[name]
		shapes = append(shapes, rendering.Shape{
			Name:       name,
			Vertices:   rendering.NewVertexBuffer(glctx.API, shapeCfg.Vertices, rendering.StaticDraw),
			Indices:    rendering.NewIndexBuffer(glctx.API, shapeCfg.Indices, rendering.StaticDraw),
			IndexCount: int32(len(shapeCfg.Indices)),
		})
	}
	return shapes
}

func (v *Viewer) shaderSources() (*shaders.SourcePair, error) {
	if v.cfg.Shaders.External() {
		return shaders.FileSources(v.cfg.Shaders.VertexFile.String(), v.cfg.Shaders.FragmentFile.String())
	}
	return shaders.BuiltinSources(v.shaderData)
}

func (v *Viewer) queueInitialUniforms() {
	v.painter.QueueUniform(rendering.UniformWrite{
		Name:  TransformUniform,
		Kind:  rendering.UniformMat4,
		Value: mgl32.Ident4(),
	})
	for _, name := range slices.Sorted(maps.Keys(v.cfg.Uniforms)) {
		uniformCfg := v.cfg.Uniforms[name]
		kind, err := rendering.ParseUniformKind(uniformCfg.Kind)
		if err != nil {
			// Validate already rejected bad kinds
			continue
		}
		v.painter.QueueUniform(rendering.UniformWrite{
			Name:  name,
			Kind:  kind,
			Value: uniformCfg.Value,
		})
	}
}

// tick runs once per frame on the render thread, after the swap.
func (v *Viewer) tick(dt time.Duration) {
	if !v.paused {
		v.angle += float32(dt.Seconds()) * rotationSpeed
		v.painter.QueueUniform(rendering.UniformWrite{
			Name:  TransformUniform,
			Kind:  rendering.UniformMat4,
			Value: mgl32.HomogRotate3DZ(v.angle),
		})
	}
	v.maybeReloadShaders()
	v.stats.Update()
}

func (v *Viewer) maybeReloadShaders() {
	requested := v.reload.Swap(false)
	if v.watcher != nil {
		select {
		case path := <-v.watcher.Changed:
			v.log.Info("shader file changed: " + path)
			requested = true
		default:
		}
	}
	if !requested {
		return
	}

	sources, err := v.shaderSources()
	if err != nil {
		v.log.Error("could not reload shader sources: " + err.Error())
		return
	}
	program, err := shaders.NewProgram(v.glctx.API, sources.Vertex, sources.Fragment)
	if err != nil {
		// keep painting with the old program
		v.log.Error("shader rebuild failed: " + err.Error())
		return
	}

	old := v.painter.Program()
	v.painter.SetProgram(program)
	v.glctx.API.DeleteProgram(old)
	v.stats.RecordShaderRebuild()
	v.log.Info("shader program rebuilt")
}

func (v *Viewer) RequestShutdown() {
	v.cancel()
}

func (v *Viewer) RequestShaderReload() {
	v.reload.Store(true)
}

func (v *Viewer) TogglePause() {
	v.paused = !v.paused
}
