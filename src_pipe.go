package proxyplayer

import (
	"fmt"

	"github.com/tinyzimmer/go-gst/gst"
)

// SrcPipe decodes a file with playbin and hands the decoded streams to
// proxysinks instead of rendering them.
type SrcPipe struct {
	*Pipe

	videoSink *gst.Element
	audioSink *gst.Element
}

func CreateSrcPipe(uri, videoProxy, audioProxy string) (pipe *SrcPipe, err error) {
	playbin, err := gst.NewElement("playbin")
	if err != nil {
		return nil, fmt.Errorf("create source pipeline: %w", err)
	}
	if err = playbin.SetProperty("uri", uri); err != nil {
		return nil, fmt.Errorf("set uri: %w", err)
	}
	// playbin is itself a GstPipeline.
	pipeline := gst.FromGstPipelineUnsafeNone(playbin.Unsafe())

	videoSink, err := gst.NewElementWithName("proxysink", videoProxy)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", videoProxy, err)
	}
	audioSink, err := gst.NewElementWithName("proxysink", audioProxy)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", audioProxy, err)
	}

	setObjectProperty(pipeline.Unsafe(), "video-sink", videoSink)
	setObjectProperty(pipeline.Unsafe(), "audio-sink", audioSink)

	pipe = &SrcPipe{
		Pipe:      newPipe(pipeline),
		videoSink: videoSink,
		audioSink: audioSink,
	}
	return
}

func (p *SrcPipe) VideoSink() *gst.Element {
	return p.videoSink
}

func (p *SrcPipe) AudioSink() *gst.Element {
	return p.audioSink
}
