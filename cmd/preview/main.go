package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sphere-raytracer/internal/scenefile"
	"sphere-raytracer/internal/viewer"
)

// keymap binds window keys to viewer actions. Keys fire once per press.
var keymap = map[ebiten.Key]viewer.Action{
	ebiten.KeyR:          viewer.ToggleContinuous,
	ebiten.KeyEscape:     viewer.Quit,
	ebiten.KeyArrowLeft:  viewer.YawLeft,
	ebiten.KeyArrowRight: viewer.YawRight,
	ebiten.KeyArrowUp:    viewer.PitchUp,
	ebiten.KeyArrowDown:  viewer.PitchDown,
	ebiten.KeyW:          viewer.Forward,
	ebiten.KeyS:          viewer.Back,
}

type previewGame struct {
	s       *viewer.Session
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *previewGame) Update() error {
	for key, act := range keymap {
		if inpututil.IsKeyJustPressed(key) {
			g.s.Handle(act)
		}
	}
	if g.s.Closed() {
		return ebiten.Termination
	}

	if _, err := g.s.Frame(context.Background()); err != nil {
		return err
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	w, h := g.s.Size()
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.scratch = g.s.PremultipliedPixels(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.s.Size()
}

func main() {
	zoom := flag.Int("zoom", 1, "Window size multiplier")
	width := flag.Int("width", 0, "Override canvas width")
	height := flag.Int("height", 0, "Override canvas height")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: preview [options] [scene]\n\n")
		fmt.Fprintf(os.Stderr, "Built-in scenes: %s\n", strings.Join(scenefile.PresetNames(), ", "))
		fmt.Fprintf(os.Stderr, "Keys: arrows turn, W/S move, R toggles continuous redraw, Esc quits.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	name := "reflection"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}

	d, err := scenefile.Resolve(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *width > 0 {
		d.Canvas.Width = *width
	}
	if *height > 0 {
		d.Canvas.Height = *height
	}

	g := &previewGame{s: viewer.NewSession(d)}
	w, h := g.s.Size()
	ebiten.SetWindowTitle("Ray tracer: " + d.Name)
	ebiten.SetWindowSize(w*(*zoom), h*(*zoom))
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
