package core

// Stage is a step of the analysis pipeline. Stages only move forward.
type Stage uint8

const (
	StageUnparsed Stage = iota
	StageTraced
	StageOriented
	StageSeeded
	StageFilled
)

// String returns the string representation of a stage.
func (s Stage) String() string {
	switch s {
	case StageUnparsed:
		return "Unparsed"
	case StageTraced:
		return "Traced"
	case StageOriented:
		return "Oriented"
	case StageSeeded:
		return "Seeded"
	case StageFilled:
		return "Filled"
	default:
		return "Unknown"
	}
}

// Analysis runs the pipeline over one tile map and caches each stage's output.
// It is not safe for concurrent use; analyse independent maps in parallel instead.
type Analysis struct {
	Map *TileMap

	opts        TraceOptions
	stage       Stage
	err         error
	loop        Loop
	orientation Orientation
	seeds       []Coord
	seedSet     Region
	interior    Region
}

// NewAnalysis prepares an analysis of m. No work is done until a stage is requested.
func NewAnalysis(m *TileMap) *Analysis {
	return NewAnalysisWith(m, DefaultTraceOptions())
}

// NewAnalysisWith prepares an analysis that traces with the given options.
func NewAnalysisWith(m *TileMap, opts TraceOptions) *Analysis {
	return &Analysis{Map: m, opts: opts}
}

// Stage returns the last completed stage.
func (a *Analysis) Stage() Stage {
	return a.stage
}

// Err returns the error that stopped the pipeline, if any.
func (a *Analysis) Err() error {
	return a.err
}

// Advance runs the next stage. Once a stage has failed every later call
// returns the same error.
func (a *Analysis) Advance() (Stage, error) {
	if a.err != nil {
		return a.stage, a.err
	}

	switch a.stage {
	case StageUnparsed:
		start, err := a.Map.Start()
		if err != nil {
			return a.fail(err)
		}
		loop, err := TraceWith(a.Map, start, a.opts)
		if err != nil {
			return a.fail(err)
		}
		a.loop = loop
	case StageTraced:
		o, err := Classify(a.loop)
		if err != nil {
			return a.fail(err)
		}
		a.orientation = o
	case StageOriented:
		a.seeds = Seeds(a.Map, a.loop, a.orientation)
		a.seedSet = NewRegion(a.seeds...)
	case StageSeeded:
		a.interior = Fill(a.Map, a.seeds, a.loop)
	case StageFilled:
		return a.stage, nil
	}

	a.stage++
	return a.stage, nil
}

func (a *Analysis) fail(err error) (Stage, error) {
	a.err = err
	return a.stage, err
}

// RunTo advances until the target stage is reached or a stage fails.
func (a *Analysis) RunTo(target Stage) error {
	for a.stage < target {
		if _, err := a.Advance(); err != nil {
			return err
		}
	}
	return a.err
}

// Run completes the whole pipeline.
func (a *Analysis) Run() error {
	return a.RunTo(StageFilled)
}

// Loop returns the traced loop.
func (a *Analysis) Loop() (Loop, error) {
	if err := a.RunTo(StageTraced); err != nil {
		return Loop{}, err
	}
	return a.loop, nil
}

// Orientation returns the loop orientation.
func (a *Analysis) Orientation() (Orientation, error) {
	if err := a.RunTo(StageOriented); err != nil {
		return Orientation{}, err
	}
	return a.orientation, nil
}

// Seeds returns the interior seed cells found by the boundary scan.
func (a *Analysis) Seeds() ([]Coord, error) {
	if err := a.RunTo(StageSeeded); err != nil {
		return nil, err
	}
	return a.seeds, nil
}

// Interior returns the enclosed region.
func (a *Analysis) Interior() (Region, error) {
	if err := a.RunTo(StageFilled); err != nil {
		return Region{}, err
	}
	return a.interior, nil
}

// Exterior returns the cells that are neither on the loop nor enclosed by it.
func (a *Analysis) Exterior() (Region, error) {
	if err := a.Run(); err != nil {
		return Region{}, err
	}
	outside := NewRegion()
	for _, c := range a.Map.AllCoords() {
		if !a.loop.Contains(c) && !a.interior.Contains(c) {
			outside.cells.Put(c)
		}
	}
	return outside, nil
}

// Result summarises a completed analysis.
type Result struct {
	Width      int
	Height     int
	Start      Coord
	LoopLength int
	Farthest   int
	Enclosed   int
	Exterior   int
	Clockwise  bool
	Turns      int
}

// Result runs the pipeline to completion and summarises it.
func (a *Analysis) Result() (Result, error) {
	if err := a.Run(); err != nil {
		return Result{}, err
	}
	loopLen := a.loop.Len()
	enclosed := a.interior.Len()
	return Result{
		Width:      a.Map.W,
		Height:     a.Map.H,
		Start:      a.loop.Start(),
		LoopLength: loopLen,
		Farthest:   a.loop.Farthest(),
		Enclosed:   enclosed,
		Exterior:   a.Map.Size() - loopLen - enclosed,
		Clockwise:  a.orientation.Clockwise,
		Turns:      a.orientation.Turns,
	}, nil
}

// Analyze runs the full pipeline over m.
func Analyze(m *TileMap) (Result, error) {
	return NewAnalysis(m).Result()
}
