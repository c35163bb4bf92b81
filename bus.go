package proxyplayer

import (
	"context"
	"time"

	"github.com/tinyzimmer/go-gst/gst"
)

const busPollTimeout = 100 * time.Millisecond

const watchedMessages = gst.MessageError | gst.MessageWarning | gst.MessageEOS | gst.MessageStateChanged

// WatchBus reports messages posted on the pipe's bus until ctx is done.
// Errors are only reported; nothing is restarted.
func WatchBus(ctx context.Context, p *Pipe) error {
	bus := p.GetBus()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		message := bus.TimedPopFiltered(busPollTimeout, watchedMessages)
		if message == nil {
			continue
		}
		p.handleMessage(message)
	}
}

func (p *Pipe) handleMessage(message *gst.Message) {
	switch message.Type() {
	case gst.MessageError:
		gerr := message.ParseError()
		p.logger.Error("pipeline error",
			"source", message.Source(),
			"error", gerr.Error(),
			"debug", gerr.DebugString(),
		)
	case gst.MessageWarning:
		gerr := message.ParseWarning()
		p.logger.Warn("pipeline warning",
			"source", message.Source(),
			"warning", gerr.Error(),
		)
	case gst.MessageEOS:
		p.logger.Info("end of stream")
	case gst.MessageStateChanged:
		if !p.isPipeline(message.Source()) {
			return
		}
		oldState, newState := message.ParseStateChanged()
		p.logger.Debug("state changed",
			"from", oldState.String(),
			"to", newState.String(),
		)
	}
}
