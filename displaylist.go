package sketchbook

// CommandKind identifies the kind of recorded draw command.
type CommandKind uint8

const (
	CommandClear  CommandKind = iota // fill the whole target with Color
	CommandFill                      // filled outline (polygon, ellipse, rect)
	CommandStroke                    // stroked centerline of Width
	CommandMesh                      // arbitrary triangles with per-vertex color
	CommandText                      // a line of text at Path[0]
)

func (k CommandKind) String() string {
	switch k {
	case CommandClear:
		return "clear"
	case CommandFill:
		return "fill"
	case CommandStroke:
		return "stroke"
	case CommandMesh:
		return "mesh"
	case CommandText:
		return "text"
	}
	return "unknown"
}

// Vertex is a world-space mesh vertex with a straight-alpha color.
type Vertex struct {
	X, Y  float64
	Color Color
}

// Command is a single draw instruction recorded by Draw. Fill, stroke and
// mesh commands carry their triangles in Vertices/Indices so one submitter
// can render all of them; Path keeps the world-space outline (Fill),
// centerline (Stroke) or text origin (Text) for exporters.
type Command struct {
	Kind   CommandKind
	Blend  BlendMode
	Color  Color
	Path   []Vec2
	Closed bool
	Width  float64
	Join   JoinMode
	Cap    CapMode

	// Text and Size are set for CommandText.
	Text string
	Size float64

	Vertices []Vertex
	Indices  []uint16
}

// DisplayList is the ordered set of commands one frame recorded.
type DisplayList struct {
	Width, Height int
	Commands      []Command
}

// Reset empties the list while keeping its backing storage.
func (l *DisplayList) Reset(width, height int) {
	l.Width, l.Height = width, height
	clear(l.Commands)
	l.Commands = l.Commands[:0]
}

// Len returns the number of recorded commands.
func (l *DisplayList) Len() int { return len(l.Commands) }

// Stats summarises the list for debug logging.
func (l *DisplayList) Stats() ListStats {
	var s ListStats
	s.Commands = len(l.Commands)
	for i := range l.Commands {
		cmd := &l.Commands[i]
		s.Vertices += len(cmd.Vertices)
		s.Triangles += len(cmd.Indices) / 3
	}
	s.Batches = len(planBatches(l.Commands, Rect{Width: float64(l.Width), Height: float64(l.Height)}))
	return s
}

// ListStats holds per-frame command and geometry counts.
type ListStats struct {
	Commands  int
	Batches   int
	Vertices  int
	Triangles int
}

// bounds returns the axis-aligned bounding box of the command's vertices.
func (c *Command) bounds() Rect {
	if len(c.Vertices) == 0 {
		return Rect{}
	}
	minX, minY := c.Vertices[0].X, c.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range c.Vertices[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
