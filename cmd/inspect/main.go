package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"sphere-raytracer/internal/raster"
	"sphere-raytracer/internal/raytracer"
	"sphere-raytracer/internal/scenefile"
)

// inspect prints a scene summary, optionally dumps it as JSON, and probes
// single pixels: which sphere the primary ray hits, where, and the light
// arriving there.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dump := fs.Bool("dump", false, "Write the resolved scene as JSON to stdout")
	var probes probeList
	fs.Var(&probes, "probe", "Canvas coordinate x,y to trace (repeatable)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: inspect [-dump] [-probe x,y ...] <preset|scene.json>")
		return 2
	}

	d, err := scenefile.Resolve(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *dump {
		if err := scenefile.Encode(stdout, d); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	sc := &d.Scene
	fmt.Fprintf(stdout, "Scene %q: spheres=%d, lights=%d, shadows=%v, depth=%d\n",
		d.Name, len(sc.Spheres), len(sc.Lights), sc.Options.Shadows, sc.Options.MaxDepth)
	fmt.Fprintf(stdout, "  Canvas: %dx%d, viewport=%.2f, plane z=%.2f\n",
		d.Canvas.Width, d.Canvas.Height, d.Canvas.ViewportSize, d.Canvas.ProjectionPlaneZ)
	fmt.Fprintf(stdout, "  Camera: pos=(%.2f, %.2f, %.2f) yaw=%.1f pitch=%.1f roll=%.1f\n",
		d.Camera.Position[0], d.Camera.Position[1], d.Camera.Position[2], d.Camera.Yaw, d.Camera.Pitch, d.Camera.Roll)
	fmt.Fprintf(stdout, "  Background: %v\n", sc.Background)

	for i, s := range sc.Spheres {
		fmt.Fprintf(stdout, "  Sphere[%d]: center=(%.2f, %.2f, %.2f) r=%.2f color=%v specular=%s reflective=%s\n",
			i, s.Center[0], s.Center[1], s.Center[2], s.Radius, s.Color, optional(s.Specular), optional(s.Reflective))
	}
	for i, l := range sc.Lights {
		switch l.Kind {
		case raytracer.Point:
			fmt.Fprintf(stdout, "  Light[%d]: point intensity=%.2f position=%v\n", i, l.Intensity, l.Position)
		case raytracer.Directional:
			fmt.Fprintf(stdout, "  Light[%d]: directional intensity=%.2f direction=%v\n", i, l.Intensity, l.Direction)
		default:
			fmt.Fprintf(stdout, "  Light[%d]: %s intensity=%.2f\n", i, l.Kind, l.Intensity)
		}
	}

	canvas := d.NewCanvas()
	cam := d.NewCamera()
	for _, p := range probes {
		dir := cam.Direction(canvas, p[0], p[1])
		fmt.Fprintf(stdout, "  Probe (%d, %d): dir=(%.4f, %.4f, %.4f)\n", p[0], p[1], dir[0], dir[1], dir[2])

		s, t, ok := sc.ClosestIntersection(cam.Position, dir, raster.PrimaryMinT, math.Inf(1))
		if !ok {
			fmt.Fprintf(stdout, "    miss → background %v\n", sc.Background)
			continue
		}
		hit := cam.Position.Add(dir.Scale(t))
		n := hit.Sub(s.Center).Normalize()
		fmt.Fprintf(stdout, "    hit sphere color=%v at t=%.4f point=(%.3f, %.3f, %.3f)\n", s.Color, t, hit[0], hit[1], hit[2])
		if len(sc.Lights) > 0 {
			fmt.Fprintf(stdout, "    lighting=%.4f\n", sc.ComputeLighting(hit, n, dir.Neg(), s.Specular))
		}
		fmt.Fprintf(stdout, "    color=%v\n", sc.Trace(cam.Position, dir, raster.PrimaryMinT, math.Inf(1)))
	}
	return 0
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

type probeList [][2]int

func (p *probeList) String() string { return fmt.Sprint(*p) }

func (p *probeList) Set(s string) error {
	var x, y int
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
		return fmt.Errorf("probe %q: want x,y", s)
	}
	*p = append(*p, [2]int{x, y})
	return nil
}
