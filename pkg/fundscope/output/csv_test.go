package output

import (
	"testing"
	"time"

	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

func TestWriteCSV(t *testing.T) {
	day := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	sheet := &models.Sheet{
		Name: "export",
		Columns: []models.Column{
			{Name: "Name", Kind: models.KindText},
			{Name: "Amount", Kind: models.KindNumeric},
			{Name: "Connected", Kind: models.KindBoolean},
			{Name: "Award Date", Kind: models.KindTemporal},
		},
		Rows: [][]models.Value{
			{models.Text("Sunrise Court"), models.Numeric(1000), models.Boolean(true), models.Temporal(day)},
			{models.Text(""), models.NullNumeric(), models.Boolean(false), models.NullTemporal()},
			{models.Text("Oak Terrace"), models.Numeric(-300.5), models.Boolean(true), models.Temporal(day)},
		},
	}

	got, err := SheetCSV(sheet)
	if err != nil {
		t.Fatalf("SheetCSV failed: %v", err)
	}
	want := "Name,Amount,Connected,Award Date\n" +
		"Sunrise Court,1000,true,2023-01-15T00:00:00Z\n" +
		",,false,\n" +
		"Oak Terrace,-300.5,true,2023-01-15T00:00:00Z\n"
	if string(got) != want {
		t.Errorf("csv =\n%s\nwant\n%s", got, want)
	}
}
