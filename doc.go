// Package videoplane attaches a video playback surface to a 3D quad.
//
// # Overview
//
// videoplane manages a render-target surface fed by an external video
// decode pipeline and applies an edge-feathering transparency
// computation so the video's rectangular boundary blends softly into
// its surroundings. It is a thin composition over collaborators the
// host engine owns: decoding, audio output, and the per-frame render
// loop are injected, never implemented here.
//
// # Quick Start
//
//	import "github.com/gogpu/videoplane"
//
//	ctrl, err := videoplane.NewController(decoder, audio, surface.PixmapAllocator{}, videoplane.Config{
//	    Playback:   videoplane.PlaybackConfig{Autoplay: true, Volume: 0.8},
//	    QuadHeight: 2,
//	    Feather:    feather.Params{MarginX: 0.1, MarginY: 0.1, FalloffPower: 2, GlobalAlpha: 1, Enabled: true},
//	})
//	ctrl.SetSource(videoplane.SourceFromURL("https://example.com/clip.mp4", false))
//	ctrl.Prepare()
//	// ... once the decoder reports the stream ready, the controller
//	// sizes the surface, binds it to the feather material, and (with
//	// Autoplay) starts playback. Each frame:
//	ctrl.SyncFrame()
//
// # Architecture
//
// The library is organized into:
//   - Root: Controller (surface lifecycle state machine), SourceDescriptor, QuadGeometry
//   - feather: the edge-feather alpha computation (CPU reference + WGSL shader + material bindings)
//   - surface: render-target surfaces (CPU pixmap and GPU texture backends)
//
// # Coordinate System
//
// UV coordinates are normalized [0,1]x[0,1] texture space with (0,0)
// at the top-left. Quad scale is expressed as (width, height, 1) with
// width = height x aspect ratio.
//
// # Concurrency
//
// A Controller belongs to a single logical owner thread, typically the
// engine's per-frame update loop. It spawns no goroutines and takes no
// locks; the decoder's asynchronous "prepared" notification must be
// delivered back onto the owning thread.
package videoplane

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
