package proxyplayer

import (
	"errors"
	"fmt"
)

const (
	videoProxySink = "psink1"
	audioProxySink = "psink2"
	videoProxySrc  = "psrc1"
	audioProxySrc  = "psrc2"
)

type Sinks struct {
	Video string
	Audio string
}

// Graph is a playbin source pipeline whose video and audio are played by
// two separate proxysrc pipelines.
type Graph struct {
	Source *SrcPipe
	Video  *DstPipe
	Audio  *DstPipe
}

var ErrNoSink = errors.New("playback sink not set")

// CreateGraph links the pipelines and puts them on a shared clock.
func CreateGraph(uri string, sinks Sinks) (*Graph, error) {
	if sinks.Video == "" || sinks.Audio == "" {
		return nil, ErrNoSink
	}

	src, err := CreateSrcPipe(uri, videoProxySink, audioProxySink)
	if err != nil {
		return nil, err
	}

	video, err := CreateDstPipe(videoProxySrc, sinks.Video)
	if err != nil {
		return nil, err
	}
	if err := video.LinkSrc(src.VideoSink()); err != nil {
		return nil, err
	}

	audio, err := CreateDstPipe(audioProxySrc, sinks.Audio)
	if err != nil {
		return nil, err
	}
	if err := audio.LinkSrc(src.AudioSink()); err != nil {
		return nil, err
	}

	g := &Graph{Source: src, Video: video, Audio: audio}
	shareSystemClock(g.Pipes()...)
	return g, nil
}

// Pipes returns source, video and audio, in that order.
func (g *Graph) Pipes() []*Pipe {
	return []*Pipe{g.Source.Pipe, g.Video.Pipe, g.Audio.Pipe}
}

func (g *Graph) Start() error {
	for _, p := range g.Pipes() {
		if err := p.Play(); err != nil {
			return fmt.Errorf("start graph: %w", err)
		}
	}
	return nil
}

func (g *Graph) Stop() error {
	pipes := g.Pipes()
	var errs []error
	for i := len(pipes) - 1; i >= 0; i-- {
		if err := pipes[i].Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
