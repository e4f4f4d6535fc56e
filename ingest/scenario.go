package ingest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arborview/sightline/geom"
	"github.com/arborview/sightline/polygon"
	"github.com/arborview/sightline/trajectory"
)

// Scenario is a full end-to-end test case: a polygon and two trajectories,
// as an alternative to SVG ingestion for batch scenario testing.
type Scenario struct {
	Polygon *polygon.Polygon
	Q       trajectory.Trajectory
	R       trajectory.Trajectory
}

type scenarioDoc struct {
	Polygon [][2]float64 `yaml:"polygon"`
	Q       trajectoryDoc `yaml:"q"`
	R       trajectoryDoc `yaml:"r"`
}

type trajectoryDoc struct {
	Start    [2]float64 `yaml:"start"`
	Velocity [2]float64 `yaml:"velocity"`
}

// LoadScenario decodes a YAML scenario document into a Scenario, validating
// and normalizing the embedded polygon the same way LoadSVGPolygon does.
func LoadScenario(r io.Reader) (*Scenario, error) {
	var doc scenarioDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ingest: decoding scenario yaml: %w", err)
	}

	if len(doc.Polygon) < 3 {
		return nil, fmt.Errorf("ingest: scenario polygon requires at least 3 points, got %d", len(doc.Polygon))
	}
	points := make([]geom.Point, len(doc.Polygon))
	for i, pair := range doc.Polygon {
		points[i] = geom.Point{X: pair[0], Y: pair[1]}
	}

	p := polygon.New(points)
	if err := Validate(p); err != nil {
		return nil, err
	}

	return &Scenario{
		Polygon: p.Normalize(),
		Q:       toTrajectory(doc.Q),
		R:       toTrajectory(doc.R),
	}, nil
}

func toTrajectory(d trajectoryDoc) trajectory.Trajectory {
	return trajectory.New(
		geom.Point{X: d.Start[0], Y: d.Start[1]},
		geom.Point{X: d.Velocity[0], Y: d.Velocity[1]},
	)
}
