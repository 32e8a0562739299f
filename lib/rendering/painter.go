package rendering

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/glintgl/glint/lib/gfx"
	"github.com/glintgl/glint/lib/metrics"
	"github.com/glintgl/glint/lib/utils"
)

// PositionAttrib is the attribute every shape's vertex buffer feeds.
const PositionAttrib = "a_position"

// PositionComponents is the number of floats per vertex position.
const PositionComponents = 2

// Shape is one drawable: a vertex buffer, an index buffer and how many
// indices to draw from it.
type Shape struct {
	Name       string
	Vertices   GpuBuffer
	Indices    GpuBuffer
	IndexCount int32
}

// UniformWrite is a pending uniform update, applied at the start of the next
// frame on the render thread.
type UniformWrite struct {
	Name  string
	Kind  UniformKind
	Value any
}

// Painter clears the surface and draws a set of shapes with one program,
// once per Frame call. The context, program and buffers are owned by the
// painter's render loop; QueueUniform is the only entry point for other
// goroutines.
type Painter struct {
	ctx     *Context
	program gfx.Program
	bg      utils.Colour
	shapes  []Shape
	vao     gfx.VertexArray
	log     *slog.Logger

	// Tick, when set, runs once per loop iteration after the frame was
	// swapped, with the time elapsed since the previous iteration.
	Tick func(dt time.Duration)

	mu      sync.Mutex
	pending []UniformWrite
}

func NewPainter(ctx *Context, program gfx.Program, bg utils.Colour, shapes []Shape) *Painter {
	p := &Painter{
		ctx:     ctx,
		program: program,
		bg:      bg,
		shapes:  shapes,
		log:     slog.Default().With("module", "rendering"),
	}
	p.vao = ctx.API.CreateVertexArray()
	ctx.API.BindVertexArray(p.vao)
	return p
}

// Program returns the currently active program.
func (p *Painter) Program() gfx.Program {
	return p.program
}

// SetProgram swaps the active program. Must be called between frames on the
// render thread, never concurrently with Frame.
func (p *Painter) SetProgram(program gfx.Program) {
	p.program = program
}

// QueueUniform schedules a uniform write for the next frame. Safe to call
// from any goroutine; the write itself happens on the render thread.
func (p *Painter) QueueUniform(w UniformWrite) {
	p.mu.Lock()
	p.pending = append(p.pending, w)
	p.mu.Unlock()
}

func (p *Painter) takePending() []UniformWrite {
	p.mu.Lock()
	defer p.mu.Unlock()
	writes := p.pending
	p.pending = nil
	return writes
}

// Frame renders exactly one frame: resize if the display size changed, clear
// colour and depth to the background, activate the program, flush pending
// uniforms, then one indexed triangle draw per shape. Queued uniform writes
// come from other goroutines and can name anything, so a bad one is logged
// and dropped rather than aborting the frame; the rest of the batch still
// applies.
func (p *Painter) Frame() error {
	api := p.ctx.API

	p.ctx.ResizeToDisplay()

	api.ClearColor(p.bg.R, p.bg.G, p.bg.B, p.bg.A)
	api.Clear(gfx.COLOR_BUFFER_BIT | gfx.DEPTH_BUFFER_BIT)
	api.UseProgram(p.program)

	for _, w := range p.takePending() {
		err := SetUniform(api, p.program, w.Name, w.Kind, w.Value)
		if err != nil {
			p.log.Warn("dropping queued uniform write: " + err.Error())
		}
	}

	for i := range p.shapes {
		shape := &p.shapes[i]
		err := BindAttribute(api, p.program, shape.Vertices, PositionAttrib, PositionComponents, AttribLayout{})
		if err != nil {
			return err
		}
		api.BindBuffer(gfx.ELEMENT_ARRAY_BUFFER, shape.Indices.handle)
		api.DrawElements(gfx.TRIANGLES, shape.IndexCount, gfx.UNSIGNED_SHORT, 0)
		DrawCallCounter++
		metrics.DrawCalls.Inc()
	}

	FrameCounter++
	metrics.FramesRendered.Inc()
	return nil
}

// Loop renders frames until ctx is cancelled, the surface asks to close, or
// a frame fails. The stop conditions are checked before every iteration;
// back-pressure comes from the surface's swap interval.
func (p *Painter) Loop(ctx context.Context) error {
	surface := p.ctx.Surface()
	var deltaTimer utils.DeltaTimer
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if surface.ShouldClose() {
			return nil
		}
		if err := p.Frame(); err != nil {
			return err
		}
		surface.SwapBuffers()
		surface.PollEvents()
		if p.Tick != nil {
			p.Tick(deltaTimer.Next())
		}
	}
}
