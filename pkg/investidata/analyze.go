package investidata

import (
	"log/slog"

	"github.com/ukaji3/investidata-go/pkg/investidata/classify"
	"github.com/ukaji3/investidata-go/pkg/investidata/facts"
	"github.com/ukaji3/investidata-go/pkg/investidata/models"
	"github.com/ukaji3/investidata-go/pkg/investidata/report"
)

// Classify maps the workbook's sheets to categories.
func Classify(wb *models.Workbook, opts Options) models.CategoryMapping {
	var names []string
	if wb != nil {
		names = wb.SheetNames
	}
	return classify.ClassifySheets(names, opts.KeywordTables().Sheets, opts.normalizer())
}

// Analyze classifies the workbook, extracts facts from every mapped sheet
// and summarizes them. It never fails: missing sheets and columns become
// Unavailable notes in the report.
func Analyze(wb *models.Workbook, opts Options) *models.Report {
	if wb == nil {
		wb = &models.Workbook{}
	}
	tables := opts.KeywordTables()
	n := opts.normalizer()
	mapping := classify.ClassifySheets(wb.SheetNames, tables.Sheets, n)
	scanner := facts.NewScanner(tables.Alerts)
	slog.Debug("alert keywords", "categories", len(tables.Alerts), "terms", len(tables.Alerts.Terms()))
	dates := facts.DateParser{Layouts: tables.DateLayouts, Location: opts.Location}

	results := make(map[models.Category]*models.ExtractionResult)
	extras := report.Extras{Warnings: wb.Warnings}

	for _, c := range models.Categories {
		sheet, ok := mapping.Sheet(c)
		if !ok {
			slog.Debug("category not found", "category", c)
			continue
		}
		t := wb.Table(sheet)
		roles := tables.Roles(c)
		var columns []string
		if t != nil {
			columns = t.Columns
		}
		fields := classify.ClassifyColumns(columns, roles, n)
		slog.Debug("category mapped", "category", c, "sheet", sheet, "fields", len(fields), "rows", t.Len())

		res := facts.Extract(t, fields, scanner, facts.Options{
			TopN:      opts.EffectiveTopN(),
			Stopwords: tables.Stopwords,
			Dates:     dates,
			Roles:     roles,
		})
		results[c] = res

		switch c {
		case models.CategoryDevice:
			extras.Device = facts.ExtractDevice(t, fields)
		case models.CategoryAccounts:
			extras.Accounts = facts.ExtractAccounts(t)
		case models.CategoryApps:
			cols := classify.ColumnsContaining(columns, tables.AppTextColumns, n)
			var name *models.ColumnRef
			if ref, ok := fields.Lookup(models.RoleName); ok {
				name = &ref
			}
			extras.Apps = facts.ScanApps(t, cols, name, tables.SuspiciousApps)
		case models.CategoryLocations:
			extras.Locations = locations(t, fields, res)
		}
	}

	meta := models.Metadata{
		GeneratedAt: opts.now(),
		BookName:    wb.BookName,
		SheetNames:  wb.SheetNames,
		Mapping:     mapping,
		TopN:        opts.EffectiveTopN(),
	}
	return report.Summarize(meta, results, extras)
}

func locations(t *models.Table, fields models.FieldMapping, res *models.ExtractionResult) *models.LocationSummary {
	sheet := ""
	if t != nil {
		sheet = t.Name
	}
	lat, err := fields.Require(models.RoleLat, sheet)
	if err != nil {
		res.Unavailable = append(res.Unavailable, models.NewUnavailable("coordinates", err))
		return nil
	}
	lon, err := fields.Require(models.RoleLon, sheet)
	if err != nil {
		res.Unavailable = append(res.Unavailable, models.NewUnavailable("coordinates", err))
		return nil
	}
	return facts.Locations(t, lat, lon)
}
