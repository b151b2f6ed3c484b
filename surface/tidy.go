package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/tantralabs/greekgrid/models"
)

// ToTidy flattens a grid into long form, one record per cell, emitted row
// major. Grouping the records by maturity reconstructs the grid rows exactly.
func ToTidy(grid *models.EvaluationGrid) ([]models.TidyRecord, error) {
	if len(grid.Values) != len(grid.Taus) {
		return nil, fmt.Errorf("grid has %v rows, expected %v", len(grid.Values), len(grid.Taus))
	}
	records := make([]models.TidyRecord, 0, len(grid.Taus)*len(grid.Underlyings))
	for i, row := range grid.Values {
		if len(row) != len(grid.Underlyings) {
			return nil, fmt.Errorf("grid row %v has %v cells, expected %v", i, len(row), len(grid.Underlyings))
		}
		for j, value := range row {
			records = append(records, models.TidyRecord{
				Maturity:   grid.Taus[i],
				Underlying: grid.Underlyings[j],
				Value:      value,
			})
		}
	}
	return records, nil
}

// WriteTidyCSV writes a tidy table as CSV for the plotting layer.
func WriteTidyCSV(w io.Writer, records []models.TidyRecord) error {
	return gocsv.Marshal(&records, w)
}

// SaveTidyCSV writes a tidy table to a CSV file.
func SaveTidyCSV(path string, records []models.TidyRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(&records, file)
}
