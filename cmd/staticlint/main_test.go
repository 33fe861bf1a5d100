package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestExitCheckAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), ExitCheckAnalyzer, "exitmain", "exitlib")
}

func TestAnalyzers_IncludeCustomChecks(t *testing.T) {
	names := make(map[string]bool)
	for _, a := range analyzers() {
		names[a.Name] = true
	}

	for _, want := range []string{"exitcheck", "bodyclose", "printf", "SA4006"} {
		if !names[want] {
			t.Errorf("analyzer %s is not registered", want)
		}
	}
}
