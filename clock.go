package proxyplayer

/*
#cgo pkg-config: gstreamer-1.0

#include <stdlib.h>
#include <gst/gst.h>

static void set_object_property(gpointer target, const gchar *name, gpointer value) {
	g_object_set(G_OBJECT(target), name, value, NULL);
}

static void share_clock(gpointer pipeline, gpointer clock) {
	gst_pipeline_use_clock(GST_PIPELINE(pipeline), GST_CLOCK(clock));
	gst_element_set_base_time(GST_ELEMENT(pipeline), 0);
}
*/
import "C"
import (
	"runtime"
	"unsafe"

	"github.com/tinyzimmer/go-gst/gst"
)

// setObjectProperty assigns an object-valued property. go-gst only
// marshals scalar GValues through SetProperty.
func setObjectProperty(target unsafe.Pointer, name string, value *gst.Element) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.set_object_property(C.gpointer(target), cname, C.gpointer(value.Unsafe()))
}

// shareSystemClock makes every pipe run on the system clock with a zero
// base time, so proxied buffers are scheduled against the same timeline.
// go-gst binds neither gst_pipeline_use_clock nor gst_element_set_base_time.
func shareSystemClock(pipes ...*Pipe) {
	clock := gst.ObtainSystemClock()
	for _, p := range pipes {
		C.share_clock(C.gpointer(p.pipeline.Unsafe()), C.gpointer(clock.Unsafe()))
	}
	runtime.KeepAlive(clock)
}
