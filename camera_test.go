package isometric

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewCamera(t *testing.T) {
	cam := NewCamera(10, 20, 800, 600, 3, 4)
	if cam.ViewportX() != 10 || cam.ViewportY() != 20 {
		t.Errorf("viewport offset = (%d,%d), want (10,20)", cam.ViewportX(), cam.ViewportY())
	}
	if cam.Width() != 800 || cam.Height() != 600 {
		t.Errorf("viewport size = %dx%d, want 800x600", cam.Width(), cam.Height())
	}
	if cam.X() != 3 || cam.Y() != 4 {
		t.Errorf("position = (%f,%f), want (3,4)", cam.X(), cam.Y())
	}
	if !cam.Enabled() {
		t.Error("new camera should be enabled")
	}
}

func TestCameraZeroValueEnabled(t *testing.T) {
	var cam Camera
	if !cam.Enabled() {
		t.Error("zero value camera should be enabled")
	}
}

func TestCameraClampNegative(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600, 0, 0)
	for _, v := range []float64{-0.0001, -1, -1000} {
		cam.SetPosition(v, v)
		if cam.X() != 0 || cam.Y() != 0 {
			t.Errorf("SetPosition(%v) = (%f,%f), want (0,0)", v, cam.X(), cam.Y())
		}
	}
	cam.SetX(-5)
	cam.SetY(-7)
	if cam.X() != 0 || cam.Y() != 0 {
		t.Errorf("SetX/SetY negative = (%f,%f), want (0,0)", cam.X(), cam.Y())
	}
}

func TestCameraPositivePreserved(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600, 0, 0)
	for _, v := range []float64{0, 0.25, 1, 17.5, 1023} {
		cam.SetPosition(v, v*2)
		if cam.X() != v || cam.Y() != v*2 {
			t.Errorf("SetPosition(%v,%v) = (%f,%f)", v, v*2, cam.X(), cam.Y())
		}
	}
}

func TestCameraClampsEachAxis(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600, 0, 0)
	cam.SetPosition(-3, 5)
	if cam.X() != 0 || cam.Y() != 5 {
		t.Errorf("SetPosition(-3,5) = (%f,%f), want (0,5)", cam.X(), cam.Y())
	}
}

func TestSetViewportKeepsSizeOnZero(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600, 0, 0)
	cam.SetViewport(5, 6, 0, 0)
	if cam.ViewportX() != 5 || cam.ViewportY() != 6 {
		t.Errorf("offset = (%d,%d), want (5,6)", cam.ViewportX(), cam.ViewportY())
	}
	if cam.Width() != 800 || cam.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600 kept", cam.Width(), cam.Height())
	}

	cam.SetViewport(0, 0, 1024, 0)
	if cam.Width() != 1024 || cam.Height() != 600 {
		t.Errorf("size = %dx%d, want 1024x600", cam.Width(), cam.Height())
	}
	if cam.ViewportX() != 0 || cam.ViewportY() != 0 {
		t.Errorf("offset = (%d,%d), want (0,0)", cam.ViewportX(), cam.ViewportY())
	}
}

func TestCameraViewportRect(t *testing.T) {
	cam := NewCamera(10, 20, 300, 200, 0, 0)
	want := Rect{X: 10, Y: 20, Width: 300, Height: 200}
	if got := cam.Viewport(); got != want {
		t.Errorf("Viewport() = %v, want %v", got, want)
	}
}

func TestCameraEnableDisable(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600, 0, 0)
	cam.Disable()
	if cam.Enabled() {
		t.Error("Disable: still enabled")
	}
	cam.Enable(true)
	if !cam.Enabled() {
		t.Error("Enable(true): still disabled")
	}
	cam.Enable(false)
	if cam.Enabled() {
		t.Error("Enable(false): still enabled")
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600, 0, 0)
	cam.ScrollTo(10, 20, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling() = false after ScrollTo")
	}

	cam.Update(0.5)
	if !approxEqual(cam.X(), 5, 0.01) || !approxEqual(cam.Y(), 10, 0.01) {
		t.Errorf("halfway = (%f,%f), want (5,10)", cam.X(), cam.Y())
	}

	cam.Update(0.6)
	if !approxEqual(cam.X(), 10, 0.01) || !approxEqual(cam.Y(), 20, 0.01) {
		t.Errorf("end = (%f,%f), want (10,20)", cam.X(), cam.Y())
	}
	if cam.Scrolling() {
		t.Error("Scrolling() = true after tween finished")
	}
}

func TestCameraScrollToNegativeClamped(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600, 4, 4)
	cam.ScrollTo(-10, -10, 0.5, nil)
	cam.Update(1)
	if cam.X() != 0 || cam.Y() != 0 {
		t.Errorf("after scroll to negative = (%f,%f), want (0,0)", cam.X(), cam.Y())
	}
}

func TestCameraScrollToTileCenters(t *testing.T) {
	cam := NewCamera(0, 0, 640, 320, 0, 0)
	// 640/64 = 10 tiles across, 320/16 = 20 rows down.
	cam.ScrollToTile(Point{X: 50, Y: 60}, 64, 32, 0.1, ease.Linear)
	cam.Update(1)
	if !approxEqual(cam.X(), 45, 0.01) || !approxEqual(cam.Y(), 50, 0.01) {
		t.Errorf("ScrollToTile = (%f,%f), want (45,50)", cam.X(), cam.Y())
	}
}

func TestCameraStopScroll(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600, 0, 0)
	cam.ScrollTo(10, 10, 1, ease.Linear)
	cam.StopScroll()
	cam.Update(1)
	if cam.X() != 0 || cam.Y() != 0 {
		t.Errorf("after StopScroll = (%f,%f), want (0,0)", cam.X(), cam.Y())
	}
}
