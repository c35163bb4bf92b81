package ui

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

type fakeController struct {
	name   string
	plays  int
	pauses int
	seeks  []time.Duration
	err    error
}

func (f *fakeController) Name() string { return f.name }
func (f *fakeController) Play() error  { f.plays++; return f.err }
func (f *fakeController) Pause() error { f.pauses++; return f.err }
func (f *fakeController) Seek(d time.Duration) error {
	f.seeks = append(f.seeks, d)
	return f.err
}

func newTestPanel(t *testing.T) (*Panel, []*fakeController) {
	t.Helper()
	test.NewTempApp(t)
	fakes := []*fakeController{{name: "playbin0"}, {name: "pipeline0"}, {name: "pipeline1"}}
	ctrls := make([]Controller, len(fakes))
	for i, f := range fakes {
		ctrls[i] = f
	}
	return NewPanel(ctrls), fakes
}

func TestPanelLabels(t *testing.T) {
	p, _ := newTestPanel(t)
	if len(p.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(p.rows))
	}
	r := p.rows[1]
	if r.play.Text != "Play [pipeline0]" || r.pause.Text != "Paused [pipeline0]" {
		t.Fatalf("labels = %q, %q", r.play.Text, r.pause.Text)
	}
	if r.slider.Min != 0 || r.slider.Max != 100 || r.slider.Step != 0.5 {
		t.Fatalf("slider range = %g-%g step %g", r.slider.Min, r.slider.Max, r.slider.Step)
	}
}

func TestButtonsDriveTheirPipeline(t *testing.T) {
	p, fakes := newTestPanel(t)

	test.Tap(p.rows[2].play)
	test.Tap(p.rows[0].pause)
	test.Tap(p.rows[0].pause)

	if fakes[2].plays != 1 || fakes[0].plays != 0 {
		t.Errorf("plays = %d/%d", fakes[0].plays, fakes[2].plays)
	}
	if fakes[0].pauses != 2 || fakes[2].pauses != 0 {
		t.Errorf("pauses = %d/%d", fakes[0].pauses, fakes[2].pauses)
	}
}

func TestSliderSeeks(t *testing.T) {
	p, fakes := newTestPanel(t)

	p.rows[1].slider.OnChanged(12.5)

	if len(fakes[1].seeks) != 1 || fakes[1].seeks[0] != 12500*time.Millisecond {
		t.Fatalf("seeks = %v", fakes[1].seeks)
	}
	if len(fakes[0].seeks) != 0 {
		t.Fatalf("row 0 seeked: %v", fakes[0].seeks)
	}
}

func TestSetPositionDoesNotSeek(t *testing.T) {
	p, fakes := newTestPanel(t)

	p.SetPosition(0, 7*time.Second, 0)
	p.SetPosition(0, 8*time.Second, 240*time.Second)

	if len(fakes[0].seeks) != 0 {
		t.Fatalf("SetPosition seeked: %v", fakes[0].seeks)
	}
	s := p.rows[0].slider
	if s.Value != 8 {
		t.Errorf("value = %g, want 8", s.Value)
	}
	if s.Max != 240 {
		t.Errorf("max = %g, want 240", s.Max)
	}
	if p.rows[0].updating {
		t.Error("row left in updating state")
	}

	p.SetPosition(5, time.Second, 0)
}

func layoutOf(objs []fyne.CanvasObject) []fyne.Position {
	out := make([]fyne.Position, 0, 2*len(objs))
	for _, o := range objs {
		out = append(out, o.Position(), fyne.NewPos(o.Size().Width, o.Size().Height))
	}
	return out
}

func TestSetPositionRedrawsNewRange(t *testing.T) {
	p, _ := newTestPanel(t)
	s := p.rows[0].slider
	renderer := test.WidgetRenderer(s)
	s.Resize(fyne.NewSize(300, 40))

	p.SetPosition(0, 50*time.Second, 0)
	before := layoutOf(renderer.Objects())

	// Same position, longer media: the thumb has to move left.
	p.SetPosition(0, 50*time.Second, 200*time.Second)
	after := layoutOf(renderer.Objects())

	if s.Value != 50 || s.Max != 200 {
		t.Fatalf("slider = %g/%g", s.Value, s.Max)
	}
	changed := len(before) != len(after)
	for i := 0; !changed && i < len(before); i++ {
		changed = before[i] != after[i]
	}
	if !changed {
		t.Fatal("slider layout unchanged after its range grew")
	}
}

func TestControllerErrorsKeepPanelUsable(t *testing.T) {
	p, fakes := newTestPanel(t)
	fakes[0].err = errors.New("state change failed")

	test.Tap(p.rows[0].play)
	p.rows[0].slider.OnChanged(3)

	if fakes[0].plays != 1 || len(fakes[0].seeks) != 1 {
		t.Fatalf("plays = %d, seeks = %v", fakes[0].plays, fakes[0].seeks)
	}
}

func TestNewWindow(t *testing.T) {
	a := test.NewTempApp(t)
	p := NewPanel([]Controller{&fakeController{name: "playbin0"}})

	w := NewWindow(a, "Simple player", fyne.NewSize(900, 100), p)
	defer w.Close()

	if w.Title() != "Simple player" {
		t.Fatalf("title = %q", w.Title())
	}
	if w.Content() != p.Content() {
		t.Fatal("window content is not the panel")
	}
}
