package stats

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteScoreHistory exports the annealing driver's parallel (epoch, score)
// arrays as a two-column CSV, replacing the source's matplotlib figure
// (createFigure) with a format downstream tooling can plot from.
func WriteScoreHistory(w io.Writer, epochs []int, scores []float64) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"epoch", "score"}); err != nil {
		return err
	}
	n := len(epochs)
	if len(scores) < n {
		n = len(scores)
	}
	for i := 0; i < n; i++ {
		row := []string{strconv.Itoa(epochs[i]), strconv.FormatFloat(scores[i], 'f', 2, 64)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return writer.Error()
}
