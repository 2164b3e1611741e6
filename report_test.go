package moire

import (
	"strings"
	"testing"

	"github.com/akmonengine/moire/geom"
)

func TestResultSummary(t *testing.T) {
	result, err := Analyze(DefaultParams(2.0, 60, geom.AxisZ))
	if err != nil {
		t.Fatalf("Analyze() returned error: %v", err)
	}

	summary := result.Summary()
	for _, want := range []string{
		"side=2 angle=60°",
		"unique points: 32",
		"golden-ratio candidates:",
		"special angles:",
		"icosahedral matches:",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestResultSummaryFlagsTruncation(t *testing.T) {
	params := DefaultParams(2.0, 60, geom.AxisZ)
	params.MaxDistancePairs = 10

	result, err := Analyze(params)
	if err != nil {
		t.Fatalf("Analyze() returned error: %v", err)
	}

	if !strings.Contains(result.Summary(), "(truncated)") {
		t.Error("summary does not flag distance truncation")
	}
}
