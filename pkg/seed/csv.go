package seed

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/rotaworks/scheduler/pkg/errors"
	"github.com/rotaworks/scheduler/pkg/model"
)

// ImportCSV reads a starting-template CSV laid out as the source's
// import_schedule_from_csv expects: three rows per week (D1, D2, N), one
// column per day, numeric employee codes resolved through idByCode.
// Blank cells mean UNFILLED.
func ImportCSV(r io.Reader, idByCode map[int]model.EmployeeID) (*model.Schedule, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidGrid, "failed to read schedule CSV")
	}
	if len(rows) == 0 {
		return nil, errors.InvalidGrid("schedule CSV is empty")
	}
	if len(rows)%model.Slots != 0 {
		return nil, errors.InvalidGrid("schedule CSV row count is not a multiple of 3 (D1/D2/N per week)")
	}

	weeks := len(rows) / model.Slots
	s := model.NewSchedule(weeks)

	for week := 0; week < weeks; week++ {
		for slot := 0; slot < model.Slots; slot++ {
			row := rows[week*model.Slots+slot]
			for day := 0; day < model.Days && day < len(row); day++ {
				cell := strings.TrimSpace(row[day])
				if cell == "" {
					s.Set(week, day, slot, model.Unfilled)
					continue
				}
				code, err := strconv.Atoi(cell)
				if err != nil {
					return nil, errors.InvalidGrid("non-numeric employee code in schedule CSV: " + cell)
				}
				id, ok := idByCode[code]
				if !ok {
					return nil, errors.InvalidGrid("unrecognised employee code in schedule CSV: " + cell)
				}
				s.Set(week, day, slot, id)
			}
		}
	}

	return s, nil
}
