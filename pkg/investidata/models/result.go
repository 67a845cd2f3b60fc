package models

// Count is one entry of a frequency table.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CategoryHits holds the keyword scan outcome for one alert category.
type CategoryHits struct {
	// Label is the alert category label from the lexicon.
	Label string `json:"label"`
	// Rows is the number of rows containing at least one term.
	Rows int `json:"rows"`
	// Mask flags each data row that hit, indexed like Table.Rows.
	Mask []bool `json:"-"`
}

// Flagged reports whether any row hit the category.
func (h CategoryHits) Flagged() bool {
	return h.Rows > 0
}

// Interlocutors holds the outcome of the device-identity heuristic.
type Interlocutors struct {
	// Device is the most frequent sender, assumed to be the local device.
	Device string `json:"device"`
	// Suspicious lists distinct other parties among keyword-hit rows.
	Suspicious []string `json:"suspicious"`
}

// HeatCell counts parsed timestamps for one weekday and hour.
type HeatCell struct {
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
	Count   int    `json:"count"`
}

// Temporal holds activity histograms built from a date column.
type Temporal struct {
	// Column is the date column that was parsed.
	Column ColumnRef `json:"column"`
	// Parsed is the number of rows with a usable timestamp.
	Parsed int `json:"parsed"`
	// Malformed is the number of rows whose date could not be parsed.
	Malformed int `json:"malformed"`
	// ByDay counts rows per calendar day (YYYY-MM-DD), in date order.
	ByDay []Count `json:"by_day,omitempty"`
	// ByHour counts rows per hour of day.
	ByHour [24]int `json:"by_hour"`
	// Heat counts rows per weekday and hour, non-zero cells only.
	Heat []HeatCell `json:"heat,omitempty"`
	// Nocturnal counts rows whose hour falls in [0,6).
	Nocturnal int `json:"nocturnal"`
}

// ExtractionResult holds the facts extracted from one table.
type ExtractionResult struct {
	// Sheet is the source sheet name, empty for an absent table.
	Sheet string `json:"sheet,omitempty"`
	// Fields is the column mapping the extraction used.
	Fields FieldMapping `json:"fields,omitempty"`
	// TotalRows is the number of data rows.
	TotalRows int `json:"total_rows"`
	// HitRows is the number of rows hitting any alert category.
	HitRows int `json:"hit_rows"`
	// Phones holds every normalized phone number found.
	Phones []string `json:"phones,omitempty"`
	// Emails holds every e-mail address found.
	Emails []string `json:"emails,omitempty"`
	// IMEI is the first 15-digit run found, if any.
	IMEI string `json:"imei,omitempty"`
	// TopPhones ranks phone numbers by frequency.
	TopPhones []Count `json:"top_phones,omitempty"`
	// TopWords ranks body words by frequency.
	TopWords []Count `json:"top_words,omitempty"`
	// TopNames ranks capitalized tokens by frequency.
	TopNames []Count `json:"top_names,omitempty"`
	// Hits holds the keyword scan per alert category, sorted by label.
	Hits []CategoryHits `json:"hits,omitempty"`
	// AnyHit flags rows hitting at least one category.
	AnyHit []bool `json:"-"`
	// Interlocutors is nil when from/to columns are missing.
	Interlocutors *Interlocutors `json:"interlocutors,omitempty"`
	// Temporal is nil when no date column was found.
	Temporal *Temporal `json:"temporal,omitempty"`
	// Unavailable lists steps skipped for this table.
	Unavailable []Unavailable `json:"unavailable,omitempty"`
}

// HitPercent returns HitRows as a percentage of TotalRows.
func (r *ExtractionResult) HitPercent() float64 {
	if r == nil || r.TotalRows == 0 {
		return 0
	}
	return float64(r.HitRows) / float64(r.TotalRows) * 100
}

// Category returns the hits for label, if the lexicon had it.
func (r *ExtractionResult) Category(label string) (CategoryHits, bool) {
	if r == nil {
		return CategoryHits{}, false
	}
	for _, h := range r.Hits {
		if h.Label == label {
			return h, true
		}
	}
	return CategoryHits{}, false
}
