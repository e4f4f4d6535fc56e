// Command sightline is a thin CLI front end over the sightline engine: it
// loads a polygon and two trajectories from a YAML scenario file, and
// either runs the first-sight driver directly or
// builds a splinegon diagram and shoots a single ray through it.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/arborview/sightline/dbg"
	"github.com/arborview/sightline/funnel"
	"github.com/arborview/sightline/ingest"
	"github.com/arborview/sightline/render"
	"github.com/arborview/sightline/sight"
	"github.com/arborview/sightline/splinegon"
)

var (
	app = kingpin.New("sightline", "First-visibility-in-motion queries against a polygon.")

	sightCmd      = app.Command("sight", "Run the first-sight driver against a scenario file.")
	sightScenario = sightCmd.Arg("scenario", "YAML scenario file (polygon + two trajectories).").Required().String()
	sightPreview  = sightCmd.Flag("preview", "Render and inline-preview the scenario in iTerm2.").Bool()

	rayCmd      = app.Command("ray", "Build a splinegon diagram and shoot one ray through it.")
	rayScenario = rayCmd.Arg("scenario", "YAML scenario file whose q/r are the base trajectories.").Required().String()
	rayAlpha    = rayCmd.Flag("alpha", "Speed multiplier applied to q's velocity.").Default("1").Float64()
	rayBeta     = rayCmd.Flag("beta", "Speed multiplier applied to r's velocity.").Default("1").Float64()
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI for the given arguments and returns a process exit
// code. Split out from main so the testscript-driven integration tests in
// main_test.go can invoke it in-process via testscript.RunMain.
func run(args []string) int {
	switch kingpin.MustParse(app.Parse(args)) {
	case sightCmd.FullCommand():
		runSight()
	case rayCmd.FullCommand():
		runRay()
	}
	return 0
}

func runSight() {
	scenario := loadScenario(*sightScenario)

	t, ok := sight.FirstSight(scenario.Polygon, scenario.Q, scenario.R)
	if !ok {
		fmt.Println(aurora.Red("no sighting"))
		return
	}
	fmt.Println(aurora.Green(fmt.Sprintf("first sight at t = %v", t)))

	if *sightPreview {
		path := "scenario-preview.png"
		tautPath := funnel.TautString(scenario.Polygon, scenario.Q.Start, scenario.R.Start)
		for i, p := range tautPath[1 : len(tautPath)-1] {
			log.Printf("pivot %d: %s", i, dbg.PivotName(p))
		}
		if err := render.Polygon(scenario.Polygon, tautPath, 20, path); err != nil {
			log.Fatalf("rendering preview: %v", err)
		}
		previewImage(path)
	}
}

func runRay() {
	scenario := loadScenario(*rayScenario)

	d := splinegon.Build(scenario.Polygon, scenario.Q, scenario.R)
	t, ok := d.ShootRay(*rayAlpha, *rayBeta)
	if !ok {
		fmt.Println(aurora.Red("no sighting"))
		return
	}
	fmt.Println(aurora.Green(fmt.Sprintf("ray(%v, %v) first sight at t = %v", *rayAlpha, *rayBeta, t)))
}

func loadScenario(path string) *ingest.Scenario {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening scenario %q: %v", path, err)
	}
	defer f.Close()

	scenario, err := ingest.LoadScenario(f)
	if err != nil {
		log.Fatalf("loading scenario %q: %v", path, err)
	}
	return scenario
}

func previewImage(path string) {
	if err := imgcat.CatFile(path, os.Stdout); err != nil {
		log.Printf("inline preview unavailable: %v", err)
	}
}
