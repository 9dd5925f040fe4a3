package isometric

import "github.com/golang/glog"

// RenderStats holds the counters of the most recent render pass.
type RenderStats struct {
	Layers        int // layers walked
	TilesIterated int // tile coordinates visited in the visibility window
	TilesDrawn    int // tiles that produced a draw call
	Selection     bool
}

// debugLog logs render stats when debug mode is on.
func (w *World) debugLog() {
	if !w.debug {
		return
	}
	s := w.stats
	glog.Infof("isometric: layers: %d | iterated: %d | drawn: %d | selection drawn: %t",
		s.Layers, s.TilesIterated, s.TilesDrawn, s.Selection)
}
