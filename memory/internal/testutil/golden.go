// Package testutil provides shared test infrastructure for the memory
// estimators: the golden dataset of reference scenarios and their expected
// byte counts.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_estimates.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one reference scenario and its expected breakdown.
// All byte counts are exact.
type GoldenTestCase struct {
	Name         string           `json:"name"`
	Scenario     string           `json:"scenario"` // relative to testdata/
	Fields       int64            `json:"fields"`
	SuperCells   int64            `json:"super_cells"`
	Particles    map[string]int64 `json:"particles"`
	RNG          int64            `json:"rng"`
	Calorimeters map[string]int64 `json:"calorimeters"`
	Total        int64            `json:"total"`
}

// TestdataDir returns the repository's testdata directory.
// The path is resolved relative to this source file: memory/internal/testutil/ → testdata/.
func TestdataDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata")
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	path := filepath.Join(TestdataDir(t), "golden_estimates.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// ScenarioPath returns the absolute path of a golden test case's scenario.
func (tc GoldenTestCase) ScenarioPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(TestdataDir(t), tc.Scenario)
}
