package proxyplayer

import (
	"fmt"

	"github.com/tinyzimmer/go-gst/gst"
)

// DstPipe plays whatever a proxysink in another pipeline produces.
type DstPipe struct {
	*Pipe

	proxySrc *gst.Element
}

// CreateDstPipe builds "proxysrc name=<srcName> ! <sink>". sink is a
// gst-launch fragment such as "autovideosink".
func CreateDstPipe(srcName, sink string) (pipe *DstPipe, err error) {
	pipeline, err := gst.NewPipelineFromString(fmt.Sprintf("proxysrc name=%s ! %s", srcName, sink))
	if err != nil {
		return nil, fmt.Errorf("create playback pipeline %s: %w", srcName, err)
	}

	proxySrc, err := pipeline.GetElementByName(srcName)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", srcName, err)
	}

	pipe = &DstPipe{
		Pipe:     newPipe(pipeline),
		proxySrc: proxySrc,
	}
	return
}

// LinkSrc makes the proxysrc read from psink. Both ends then share one
// buffer channel.
func (p *DstPipe) LinkSrc(psink *gst.Element) error {
	if psink == nil {
		return fmt.Errorf("%s: link to nil proxysink", p.name)
	}
	setObjectProperty(p.proxySrc.Unsafe(), "proxysink", psink)
	return nil
}
