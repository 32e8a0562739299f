package rendering

// Plain counters for the stats endpoint. Only the render thread writes them;
// readers tolerate slightly stale values.
var (
	FrameCounter        uint64
	DrawCallCounter     uint64
	BufferUploadCounter uint64 // bytes
)
