// Package report aggregates extraction results into a report.
package report

import (
	"math"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// Extras carries the category-specific summaries built next to the
// generic extraction results.
type Extras struct {
	Device    *models.DeviceProfile
	Accounts  *models.AccountsSummary
	Apps      *models.AppsSummary
	Locations *models.LocationSummary
	Warnings  []string
}

// Summarize builds the report. It is a pure function: the inputs are not
// modified and ranked tables are trimmed on copies.
func Summarize(meta models.Metadata, results map[models.Category]*models.ExtractionResult, extras Extras) *models.Report {
	rep := &models.Report{
		Metadata:  meta,
		Device:    extras.Device,
		Accounts:  extras.Accounts,
		Apps:      extras.Apps,
		Locations: extras.Locations,
		Warnings:  append([]string(nil), extras.Warnings...),
	}

	for _, c := range models.Categories {
		sheet, mapped := meta.Mapping.Sheet(c)
		if !mapped {
			err := &models.MissingCategoryError{Category: c}
			rep.Unavailable = append(rep.Unavailable, models.NewUnavailable(string(c), err))
			continue
		}

		res := trim(results[c], meta.TopN)
		if res == nil {
			res = &models.ExtractionResult{Sheet: sheet}
		}
		rep.Sections = append(rep.Sections, models.Section{
			Category:   c,
			Sheet:      sheet,
			Result:     res,
			HitPercent: round1(res.HitPercent()),
		})
		for _, u := range res.Unavailable {
			rep.Unavailable = append(rep.Unavailable, models.Unavailable{
				Step:   string(c) + "/" + u.Step,
				Reason: u.Reason,
			})
		}
	}
	return rep
}

// TotalHits sums the keyword-hit rows over every section.
func TotalHits(rep *models.Report) int {
	total := 0
	for _, s := range rep.Sections {
		if s.Result != nil {
			total += s.Result.HitRows
		}
	}
	return total
}

func trim(res *models.ExtractionResult, n int) *models.ExtractionResult {
	if res == nil {
		return nil
	}
	out := *res
	if n > 0 {
		out.TopPhones = head(res.TopPhones, n)
		out.TopWords = head(res.TopWords, n)
		out.TopNames = head(res.TopNames, n)
	}
	return &out
}

func head(counts []models.Count, n int) []models.Count {
	if len(counts) <= n {
		return counts
	}
	return append([]models.Count(nil), counts[:n]...)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
