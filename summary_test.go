package edastats

import (
	"errors"
	"math"
	"testing"
)

func summaryTestTable(t *testing.T) *Table {
	t.Helper()
	numeric, err := NewFeatureMatrix(
		[]string{"cores", "hours"},
		[][]float64{
			{1, 0.5},
			{2, 1.5},
			{4, 2.0},
			{64, 10.0},
			{128, 12.0},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &Table{
		Numeric:    numeric,
		CatColumns: []string{"queue"},
		CatRows: [][]string{
			{"short"}, {"short"}, {"long"}, {"long"}, {"long"},
		},
	}
}

func TestSummarizeGroupsByCluster(t *testing.T) {
	table := summaryTestTable(t)
	assignment := []int{0, 0, 0, 1, 1}

	summaries, err := Summarize(table, assignment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	s0 := summaries[0]
	if s0.Cluster != 0 || s0.Size != 3 {
		t.Errorf("cluster 0: got (id=%d, size=%d), want (0, 3)", s0.Cluster, s0.Size)
	}
	cores := s0.Numeric["cores"]
	if cores.Min != 1 || cores.Max != 4 {
		t.Errorf("cores min/max: got (%v, %v), want (1, 4)", cores.Min, cores.Max)
	}
	if cores.Median != 2 {
		t.Errorf("cores median: got %v, want 2", cores.Median)
	}
	if want := 7.0 / 3; math.Abs(cores.Mean-want) > 1e-9 {
		t.Errorf("cores mean: got %v, want %v", cores.Mean, want)
	}
	if s0.Modes["queue"] != "short" {
		t.Errorf("cluster 0 queue mode: got %q, want \"short\"", s0.Modes["queue"])
	}

	s1 := summaries[1]
	if s1.Cluster != 1 || s1.Size != 2 {
		t.Errorf("cluster 1: got (id=%d, size=%d), want (1, 2)", s1.Cluster, s1.Size)
	}
	hours := s1.Numeric["hours"]
	if hours.Median != 11 {
		t.Errorf("hours median (even size): got %v, want 11", hours.Median)
	}
	if s1.Modes["queue"] != "long" {
		t.Errorf("cluster 1 queue mode: got %q, want \"long\"", s1.Modes["queue"])
	}
}

func TestSummarizeModeTieBreak(t *testing.T) {
	numeric, _ := NewFeatureMatrix([]string{"v"}, [][]float64{{1}, {2}, {3}, {4}})
	table := &Table{
		Numeric:    numeric,
		CatColumns: []string{"tag"},
		CatRows:    [][]string{{"b"}, {"a"}, {"a"}, {"b"}},
	}

	summaries, err := Summarize(table, []int{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "b" and "a" both appear twice; "b" was encountered first.
	if got := summaries[0].Modes["tag"]; got != "b" {
		t.Errorf("mode tie: got %q, want \"b\"", got)
	}
}

func TestSummarizeSingleMemberCluster(t *testing.T) {
	numeric, _ := NewFeatureMatrix([]string{"v"}, [][]float64{{3}, {9}})
	table := &Table{Numeric: numeric}

	summaries, err := Summarize(table, []int{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := summaries[1].Numeric["v"]
	if s.StdDev != 0 {
		t.Errorf("single-member stddev: got %v, want 0", s.StdDev)
	}
	if s.Mean != 9 || s.Median != 9 || s.Min != 9 || s.Max != 9 {
		t.Errorf("single-member stats: got %+v", s)
	}
}

func TestSummarizeSkipsEmptyClusters(t *testing.T) {
	numeric, _ := NewFeatureMatrix([]string{"v"}, [][]float64{{1}, {2}})
	table := &Table{Numeric: numeric}

	// IDs 0 and 2 are used; ID 1 never appears.
	summaries, err := Summarize(table, []int{0, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Cluster != 0 || summaries[1].Cluster != 2 {
		t.Errorf("cluster IDs: got (%d, %d), want (0, 2)", summaries[0].Cluster, summaries[1].Cluster)
	}
}

func TestSummarizeValidation(t *testing.T) {
	table := summaryTestTable(t)

	_, err := Summarize(table, []int{0, 0})
	var dimErr *DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected *DimensionMismatchError for short assignment, got %v", err)
	}

	if _, err := Summarize(table, []int{0, 0, 0, 0, -1}); err == nil {
		t.Error("expected error for negative cluster ID")
	}

	bad := &Table{
		Numeric:    table.Numeric,
		CatColumns: []string{"queue"},
		CatRows:    [][]string{{"short"}},
	}
	if _, err := Summarize(bad, []int{0, 0, 0, 1, 1}); err == nil {
		t.Error("expected error for categorical row count mismatch")
	}
}
