package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets the testscript harness re-exec this test binary as the
// "sightline" command inside each script, the same way go-internal's own
// examples wire a CLI under test without building a separate binary.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"sightline": func() int { return run(os.Args[1:]) },
	}))
}

func TestCLIScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
