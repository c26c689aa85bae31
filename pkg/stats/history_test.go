package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteScoreHistory(t *testing.T) {
	var buf bytes.Buffer
	err := WriteScoreHistory(&buf, []int{0, 1, 2}, []float64{100.5, 90.25, 80})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "epoch,score") {
		t.Error("expected a header row")
	}
	if !strings.Contains(out, "2,80.00") {
		t.Errorf("expected the final row to contain epoch 2 / score 80.00, got: %s", out)
	}
}

func TestWriteScoreHistory_MismatchedLengths(t *testing.T) {
	var buf bytes.Buffer
	err := WriteScoreHistory(&buf, []int{0, 1, 2}, []float64{100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Error("expected only the header plus one data row when scores is shorter")
	}
}
