// Package ui is the control window: one row of play, pause and seek
// controls per pipeline.
package ui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	sliderMax  = 100
	sliderStep = 0.5
)

type Controller interface {
	Name() string
	Play() error
	Pause() error
	Seek(time.Duration) error
}

type row struct {
	ctrl   Controller
	play   *widget.Button
	pause  *widget.Button
	slider *widget.Slider

	// updating suppresses seeks while the slider follows the pipeline.
	updating bool
}

type Panel struct {
	rows    []*row
	content *fyne.Container
}

func NewPanel(ctrls []Controller) *Panel {
	p := &Panel{content: container.NewVBox()}
	for _, ctrl := range ctrls {
		r := newRow(ctrl)
		p.rows = append(p.rows, r)
		p.content.Add(container.NewBorder(nil, nil, container.NewHBox(r.play, r.pause), nil, r.slider))
	}
	return p
}

func newRow(ctrl Controller) *row {
	r := &row{ctrl: ctrl}
	name := ctrl.Name()

	r.play = widget.NewButton(fmt.Sprintf("Play [%s]", name), func() {
		if err := ctrl.Play(); err != nil {
			slog.Error("play failed", "pipeline", name, "error", err)
		}
	})
	r.pause = widget.NewButton(fmt.Sprintf("Paused [%s]", name), func() {
		if err := ctrl.Pause(); err != nil {
			slog.Error("pause failed", "pipeline", name, "error", err)
		}
	})

	r.slider = widget.NewSlider(0, sliderMax)
	r.slider.Step = sliderStep
	r.slider.OnChanged = func(secs float64) {
		if r.updating {
			return
		}
		if err := ctrl.Seek(time.Duration(secs * float64(time.Second))); err != nil {
			slog.Error("seek failed", "pipeline", name, "error", err)
		}
	}
	return r
}

func (p *Panel) Content() fyne.CanvasObject {
	return p.content
}

// SetPosition moves row idx's slider to pos without seeking. A positive
// dur becomes the slider's range. Must run on the fyne goroutine.
func (p *Panel) SetPosition(idx int, pos, dur time.Duration) {
	if idx < 0 || idx >= len(p.rows) {
		return
	}
	r := p.rows[idx]

	r.updating = true
	defer func() { r.updating = false }()

	if dur > 0 && r.slider.Max != dur.Seconds() {
		r.slider.Max = dur.Seconds()
		r.slider.Refresh()
	}
	r.slider.SetValue(pos.Seconds())
}

// NewWindow builds the control window. Closing it quits the app.
func NewWindow(a fyne.App, title string, size fyne.Size, p *Panel) fyne.Window {
	w := a.NewWindow(title)
	w.SetContent(p.Content())
	w.Resize(size)
	w.SetMaster()
	return w
}
