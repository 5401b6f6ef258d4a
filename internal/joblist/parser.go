package joblist

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// xmlRenderList matches the job list schema:
//
//	<RenderList>
//	  <Group Name="chapter4">
//	    <Job Name="shadows" Scene="shadows" Format="png"/>
//	  </Group>
//	  <Job Name="mine" Scene="scenes/mine.json"/>
//	</RenderList>
type xmlRenderList struct {
	Groups []xmlGroup `xml:"Group"`
	Jobs   []xmlJob   `xml:"Job"`
}

type xmlGroup struct {
	Name string   `xml:"Name,attr"`
	Jobs []xmlJob `xml:"Job"`
}

type xmlJob struct {
	Name   string `xml:"Name,attr"`
	Scene  string `xml:"Scene,attr"`
	Format string `xml:"Format,attr"`
}

// Parse reads a job list. Jobs inside a Group get "<group>/" prefixed to
// their name. Relative scene paths that point at files are resolved against
// the list's directory; anything else is kept as a preset name.
func Parse(xmlPath string) ([]Job, error) {
	raw, err := os.ReadFile(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("joblist: read %s: %w", xmlPath, err)
	}

	var list xmlRenderList
	if err := xml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("joblist: parse %s: %w", xmlPath, err)
	}

	baseDir := filepath.Dir(xmlPath)
	seen := make(map[string]bool)
	var jobs []Job

	add := func(prefix string, j xmlJob) error {
		if j.Scene == "" {
			return fmt.Errorf("joblist: %s: job %q has no Scene", xmlPath, j.Name)
		}
		name := j.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(j.Scene), filepath.Ext(j.Scene))
		}
		if prefix != "" {
			name = prefix + "/" + name
		}
		if err := ValidName(name); err != nil {
			return fmt.Errorf("joblist: %s: %w", xmlPath, err)
		}
		if seen[name] {
			return fmt.Errorf("joblist: %s: duplicate job name %q", xmlPath, name)
		}
		seen[name] = true

		jobs = append(jobs, Job{
			Name:   name,
			Scene:  resolveScene(baseDir, j.Scene),
			Format: j.Format,
		})
		return nil
	}

	for _, g := range list.Groups {
		for _, j := range g.Jobs {
			if err := add(g.Name, j); err != nil {
				return nil, err
			}
		}
	}
	for _, j := range list.Jobs {
		if err := add("", j); err != nil {
			return nil, err
		}
	}

	return jobs, nil
}

func resolveScene(baseDir, scene string) string {
	if filepath.IsAbs(scene) || filepath.Ext(scene) == "" {
		return scene
	}
	return filepath.Join(baseDir, scene)
}
