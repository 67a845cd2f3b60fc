package output

import (
	"time"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

func sampleTable() *models.Table {
	return &models.Table{
		Name:      "Mensajes",
		HeaderRow: 1,
		Columns:   []string{"Fecha", "Remitente", "Mensaje"},
		Rows: []models.Row{
			{R: 2, Cells: []any{"12/03/2023 01:10", "yo", "tengo el arma"}},
			{R: 3, Cells: []any{"12/03/2023 09:30", int64(3001112233), "hola, nos vemos"}},
			{R: 4, Cells: []any{"13/03/2023 22:00", "yo", nil}},
		},
	}
}

func sampleReport() *models.Report {
	res := &models.ExtractionResult{
		Sheet:     "Mensajes",
		Fields:    models.FieldMapping{models.RoleBody: {Index: 2, Label: "Mensaje"}},
		TotalRows: 3,
		HitRows:   1,
		TopPhones: []models.Count{{Value: "+573001112233", Count: 2}},
		Hits:      []models.CategoryHits{{Label: "Armas/Violencia", Rows: 1}},
		Interlocutors: &models.Interlocutors{
			Device:     "yo",
			Suspicious: []string{"+573001112233"},
		},
		Temporal: &models.Temporal{
			Column:    models.ColumnRef{Index: 0, Label: "Fecha"},
			Parsed:    3,
			Nocturnal: 1,
		},
	}
	res.Temporal.ByHour[1] = 1
	res.Temporal.ByHour[9] = 2

	return &models.Report{
		Metadata: models.Metadata{
			GeneratedAt: time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
			BookName:    "caso.xlsx",
			SheetNames:  []string{"Resumen", "Mensajes"},
			Mapping: models.CategoryMapping{
				models.CategoryDevice:   "Resumen",
				models.CategoryMessages: "Mensajes",
			},
			TopN: 10,
		},
		Sections: []models.Section{
			{Category: models.CategoryDevice, Sheet: "Resumen", Result: &models.ExtractionResult{Sheet: "Resumen", TotalRows: 1}},
			{Category: models.CategoryMessages, Sheet: "Mensajes", Result: res, HitPercent: 33.3},
		},
		Device: &models.DeviceProfile{IMEI: "356938035643809", Brand: "Samsung"},
		Unavailable: []models.Unavailable{
			{Step: "accounts", Reason: "accounts: sheet not found"},
		},
		Warnings: []string{"extraction error in sheet \"Roto\""},
	}
}
