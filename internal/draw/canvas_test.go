package draw

import (
	"bytes"
	"strings"
	"testing"
)

func countSet(c *Canvas) int {
	n := 0
	for _, p := range c.pixels {
		if p {
			n++
		}
	}
	return n
}

func TestFillCircleCoversCenterOnly(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.FillCircle(20, 20, 5)

	if !c.pixel(20, 20) {
		t.Error("center pixel not set")
	}
	if c.pixel(0, 0) || c.pixel(39, 39) {
		t.Error("corner pixels set")
	}
	// Area of a radius-5 circle is about 78 pixels
	if n := countSet(c); n < 60 || n > 100 {
		t.Errorf("filled %d pixels, want about 78", n)
	}
}

func TestDrawCircleIsHollow(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.DrawCircle(20, 20, 8)
	if c.pixel(20, 20) {
		t.Error("outline filled the center")
	}
	if !c.pixel(28, 20) || !c.pixel(12, 20) {
		t.Error("outline misses the horizontal extremes")
	}
}

func TestClippedDrawingIsIgnored(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.FillCircle(-50, -50, 3)
	c.DrawLine(Point{X: -5, Y: -5}, Point{X: -1, Y: -1})
	if n := countSet(c); n != 0 {
		t.Fatalf("%d pixels set outside the canvas", n)
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(3, 1, 3, 2)
	c.SetFloat(0, 0) // top only
	c.SetFloat(1, 1) // bottom only
	c.SetFloat(2, 0)
	c.SetFloat(2, 1) // both

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"\033[1;1H▀", "\033[1;2H▄", "\033[1;3H█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output %q missing %q", out, want)
		}
	}
}

func TestFrameWriterBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFrameWriter(&buf, 2, 3)
	fw.Text(1, 1, "hi")
	if buf.Len() != 0 {
		t.Fatal("wrote before Flush")
	}
	if err := fw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\033[4;3Hhi" {
		t.Fatalf("got %q", got)
	}

	fw.SetOrigin(0, 0)
	fw.Centered(10, 2, "ab")
	if err := fw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.HasSuffix(got, "\033[2;5Hab") {
		t.Fatalf("centered text written as %q", got)
	}
}
