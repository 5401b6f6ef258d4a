package scenefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sphere-raytracer/internal/raytracer"
)

const sampleScene = `{
  "background": [0, 0, 0],
  "shadows": true,
  "max_depth": 2,
  "canvas": {"width": 64, "height": 32},
  "camera": {"position": [0, 1, -1], "pitch": 10},
  "spheres": [
    {"center": [0, -1, 3], "radius": 1, "color": [255, 0, 0], "specular": 500, "reflective": 0.2},
    {"center": [2, 0, 4], "radius": 1, "color": [0, 0, 255, 128]}
  ],
  "lights": [
    {"type": "ambient", "intensity": 0.2},
    {"type": "point", "intensity": 0.6, "position": [2, 1, 0]},
    {"type": "Directional", "intensity": 0.2, "direction": [1, 4, 4]}
  ]
}`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	sc := d.Scene
	if sc.Background != raytracer.RGB(0, 0, 0) {
		t.Errorf("background = %v", sc.Background)
	}
	if !sc.Options.Shadows || sc.Options.MaxDepth != 2 {
		t.Errorf("options = %+v", sc.Options)
	}
	if d.Canvas.Width != 64 || d.Canvas.Height != 32 || d.Canvas.ViewportSize != 1 || d.Canvas.ProjectionPlaneZ != 1 {
		t.Errorf("canvas = %+v", d.Canvas)
	}
	if d.Camera.Pitch != 10 || d.Camera.Position[1] != 1 {
		t.Errorf("camera = %+v", d.Camera)
	}

	if len(sc.Spheres) != 2 {
		t.Fatalf("got %d spheres", len(sc.Spheres))
	}
	s0, s1 := sc.Spheres[0], sc.Spheres[1]
	if s0.Specular == nil || *s0.Specular != 500 || s0.Reflectivity() != 0.2 {
		t.Errorf("sphere 0 optional fields: specular=%v reflective=%v", s0.Specular, s0.Reflective)
	}
	if s1.Specular != nil || s1.Reflective != nil {
		t.Error("sphere 1 should have no specular or reflective")
	}
	if s1.Color[3] != 128 {
		t.Errorf("sphere 1 alpha = %v, want 128", s1.Color[3])
	}

	kinds := []raytracer.LightKind{raytracer.Ambient, raytracer.Point, raytracer.Directional}
	if len(sc.Lights) != len(kinds) {
		t.Fatalf("got %d lights", len(sc.Lights))
	}
	for i, k := range kinds {
		if sc.Lights[i].Kind != k {
			t.Errorf("light %d kind = %v, want %v", i, sc.Lights[i].Kind, k)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{`, "parse"},
		{"unknown field", `{"spherez": []}`, "parse"},
		{"second object", `{"spheres": []} {}`, "after the scene object"},
		{"trailing garbage", `{"spheres": []} xyz`, "after the scene object"},
		{"zero radius", `{"spheres": [{"center": [0,0,0], "radius": 0, "color": [1,1,1]}]}`, "sphere 0: radius"},
		{"short color", `{"spheres": [{"center": [0,0,0], "radius": 1, "color": [1,1]}]}`, "sphere 0: color"},
		{"reflective range", `{"spheres": [{"center": [0,0,0], "radius": 1, "color": [1,1,1], "reflective": 1.5}]}`, "reflective"},
		{"light type", `{"spheres": [], "lights": [{"type": "spot", "intensity": 1}]}`, "unknown light type"},
		{"point no position", `{"spheres": [], "lights": [{"type": "point", "intensity": 1}]}`, "position"},
		{"zero direction", `{"spheres": [], "lights": [{"type": "directional", "intensity": 1, "direction": [0,0,0]}]}`, "direction"},
		{"negative intensity", `{"spheres": [], "lights": [{"type": "ambient", "intensity": -1}]}`, "intensity"},
		{"negative depth", `{"spheres": [], "max_depth": -1}`, "max_depth"},
		{"canvas size", `{"spheres": [], "canvas": {"width": 0, "height": 10}}`, "canvas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirrors.json")
	if err := os.WriteFile(path, []byte(sampleScene), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Name != "mirrors" {
		t.Errorf("name = %q, want mirrors", d.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	orig, ok := Preset("reflection")
	if !ok {
		t.Fatal("reflection preset missing")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, orig); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse encoded scene: %v\n%s", err, buf.String())
	}

	if got.Scene.Options != orig.Scene.Options {
		t.Errorf("options = %+v, want %+v", got.Scene.Options, orig.Scene.Options)
	}
	if len(got.Scene.Spheres) != len(orig.Scene.Spheres) || len(got.Scene.Lights) != len(orig.Scene.Lights) {
		t.Fatalf("counts changed: %d/%d spheres, %d/%d lights",
			len(got.Scene.Spheres), len(orig.Scene.Spheres), len(got.Scene.Lights), len(orig.Scene.Lights))
	}
	for i := range orig.Scene.Lights {
		if got.Scene.Lights[i] != orig.Scene.Lights[i] {
			t.Errorf("light %d = %+v, want %+v", i, got.Scene.Lights[i], orig.Scene.Lights[i])
		}
	}
	if got.Scene.Spheres[3].Reflectivity() != 0.5 || *got.Scene.Spheres[3].Specular != 1000 {
		t.Errorf("ground sphere optional fields lost: %+v", got.Scene.Spheres[3])
	}
}

func TestPresets(t *testing.T) {
	names := PresetNames()
	want := []string{"basic", "diffuse", "reflection", "shadows", "specular"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("PresetNames = %v, want %v", names, want)
	}

	basic, _ := Preset("basic")
	if len(basic.Scene.Lights) != 0 || len(basic.Scene.Spheres) != 3 {
		t.Errorf("basic: %d spheres, %d lights", len(basic.Scene.Spheres), len(basic.Scene.Lights))
	}
	shadows, _ := Preset("shadows")
	if !shadows.Scene.Options.Shadows || shadows.Scene.Options.MaxDepth != 0 {
		t.Errorf("shadows options = %+v", shadows.Scene.Options)
	}

	// Presets are independent copies.
	a, _ := Preset("specular")
	*a.Scene.Spheres[0].Specular = 1
	b, _ := Preset("specular")
	if *b.Scene.Spheres[0].Specular != 500 {
		t.Error("mutating one preset leaked into another")
	}

	if _, ok := Preset("nope"); ok {
		t.Error("unknown preset resolved")
	}
}

func TestResolve(t *testing.T) {
	d, err := Resolve("diffuse")
	if err != nil || d.Name != "diffuse" {
		t.Fatalf("Resolve(diffuse) = %v, %v", d, err)
	}
	if _, err := Resolve(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for an unknown scene")
	}
}

func TestLoad_BundledScene(t *testing.T) {
	d, err := Load(filepath.Join("..", "..", "scenes", "mirrors.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Scene.Spheres) != 4 || d.Scene.Options.MaxDepth != 5 || d.Camera.Yaw != -25 {
		t.Errorf("unexpected scene: %d spheres, options %+v, camera %+v",
			len(d.Scene.Spheres), d.Scene.Options, d.Camera)
	}
}
