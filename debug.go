package sketchbook

// debugLog logs display list stats for one frame at debug level.
func debugLog(frame uint64, stats ListStats, drawCalls int) {
	Logger().Debug("frame",
		"frame", frame,
		"commands", stats.Commands,
		"batches", stats.Batches,
		"draw_calls", drawCalls,
		"vertices", stats.Vertices,
		"triangles", stats.Triangles,
	)
}
