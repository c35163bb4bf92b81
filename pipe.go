package proxyplayer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tinyzimmer/go-gst/gst"

	"github.com/basheuft/proxyplayer/internal/dotfile"
)

var (
	ErrQueryFailed = errors.New("position query failed")
	ErrSeekFailed  = errors.New("seek failed")
)

// Pipe is one independently clocked pipeline of the graph.
type Pipe struct {
	pipeline *gst.Pipeline
	name     string
	logger   *slog.Logger

	mutex     *sync.Mutex
	requested gst.State
}

func newPipe(pipeline *gst.Pipeline) *Pipe {
	name := pipeline.GetName()
	return &Pipe{
		pipeline:  pipeline,
		name:      name,
		logger:    slog.Default().With("pipeline", name),
		mutex:     &sync.Mutex{},
		requested: gst.StateNull,
	}
}

func (p *Pipe) Name() string {
	return p.name
}

func (p *Pipe) GetBus() *gst.Bus {
	return p.pipeline.GetPipelineBus()
}

func (p *Pipe) Play() error {
	p.logger.Info("playing: "+p.name, "from", p.pipeline.GetState().String())
	return p.setState(gst.StatePlaying)
}

func (p *Pipe) Pause() error {
	p.logger.Info("paused: "+p.name, "from", p.pipeline.GetState().String())
	return p.setState(gst.StatePaused)
}

// Stop moves the pipeline to NULL. Stopping twice is a no-op.
func (p *Pipe) Stop() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.requested == gst.StateNull {
		return nil
	}
	return p.applyState(gst.StateNull)
}

func (p *Pipe) setState(state gst.State) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.applyState(state)
}

// applyState must be called with mutex held.
func (p *Pipe) applyState(state gst.State) error {
	if err := p.pipeline.SetState(state); err != nil {
		return fmt.Errorf("%s: set state %s: %w", p.name, state.String(), err)
	}
	p.requested = state
	return nil
}

func (p *Pipe) Position() (time.Duration, error) {
	ok, pos := p.pipeline.QueryPosition(gst.FormatTime)
	if !ok || pos < 0 {
		return 0, ErrQueryFailed
	}
	return time.Duration(pos), nil
}

func (p *Pipe) Duration() (time.Duration, error) {
	ok, dur := p.pipeline.QueryDuration(gst.FormatTime)
	if !ok || dur < 0 {
		return 0, ErrQueryFailed
	}
	return time.Duration(dur), nil
}

// Seek flushes the pipeline and jumps to the nearest key unit before dst.
func (p *Pipe) Seek(dst time.Duration) error {
	if dst < 0 {
		dst = 0
	}
	seek := gst.NewSeekEvent(1.0, gst.FormatTime, gst.SeekFlagFlush|gst.SeekFlagKeyUnit,
		gst.SeekTypeSet, int64(dst), gst.SeekTypeNone, -1)
	if !p.pipeline.SendEvent(seek) {
		return fmt.Errorf("%s: seek to %s: %w", p.name, dst, ErrSeekFailed)
	}
	return nil
}

// DumpDot writes the pipeline graph into dir, which must already be the
// value of GST_DEBUG_DUMP_DOT_DIR.
func (p *Pipe) DumpDot(dir string) string {
	name := dotfile.Name(p.name, time.Now())
	p.pipeline.DebugBinToDotFile(gst.DebugGraphShowAll, name)
	return dotfile.Path(dir, name)
}

func (p *Pipe) isPipeline(source string) bool {
	return source == p.name
}
