package models

import "time"

// DeviceProfile holds the device identity read from the device sheet.
type DeviceProfile struct {
	IMEI  string `json:"imei,omitempty"`
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
	User  string `json:"user,omitempty"`
}

// AccountsSummary holds identifiers found in the accounts sheet.
type AccountsSummary struct {
	Emails    []string `json:"emails,omitempty"`
	Phones    []string `json:"phones,omitempty"`
	Facebook  []string `json:"facebook,omitempty"`
	Instagram []string `json:"instagram,omitempty"`
}

// FirstEmail returns the first e-mail address, or "".
func (a *AccountsSummary) FirstEmail() string {
	if a == nil {
		return ""
	}
	return firstOf(a.Emails)
}

// FirstPhone returns the first phone number, or "".
func (a *AccountsSummary) FirstPhone() string {
	if a == nil {
		return ""
	}
	return firstOf(a.Phones)
}

// FirstFacebook returns the first Facebook handle, or "".
func (a *AccountsSummary) FirstFacebook() string {
	if a == nil {
		return ""
	}
	return firstOf(a.Facebook)
}

// FirstInstagram returns the first Instagram handle, or "".
func (a *AccountsSummary) FirstInstagram() string {
	if a == nil {
		return ""
	}
	return firstOf(a.Instagram)
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// AppsSummary holds the suspicious-application scan.
type AppsSummary struct {
	Total   int      `json:"total"`
	Flagged int      `json:"flagged"`
	Percent float64  `json:"percent"`
	Apps    []string `json:"apps,omitempty"`
}

// LocationSummary holds the usable coordinates of the locations sheet.
type LocationSummary struct {
	Points    int     `json:"points"`
	Malformed int     `json:"malformed"`
	MinLat    float64 `json:"min_lat"`
	MaxLat    float64 `json:"max_lat"`
	MinLon    float64 `json:"min_lon"`
	MaxLon    float64 `json:"max_lon"`
}

// Metadata describes one analysis run.
type Metadata struct {
	// GeneratedAt is the time the report was built.
	GeneratedAt time.Time `json:"generated_at"`
	// BookName is the analyzed workbook file name.
	BookName string `json:"book_name"`
	// SheetNames lists the detected sheet names in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Mapping is the detected category mapping.
	Mapping CategoryMapping `json:"mapping"`
	// TopN is the configured length of ranked tables.
	TopN int `json:"top_n"`
}

// Section is the report for one category.
type Section struct {
	Category Category          `json:"category"`
	Sheet    string            `json:"sheet,omitempty"`
	Result   *ExtractionResult `json:"result,omitempty"`
	// HitPercent is Result.HitPercent rounded to one decimal.
	HitPercent float64 `json:"hit_percent"`
}

// Report is the structured outcome consumed by presentation layers.
type Report struct {
	Metadata  Metadata         `json:"metadata"`
	Sections  []Section        `json:"sections"`
	Device    *DeviceProfile   `json:"device,omitempty"`
	Accounts  *AccountsSummary `json:"accounts,omitempty"`
	Apps      *AppsSummary     `json:"apps,omitempty"`
	Locations *LocationSummary `json:"locations,omitempty"`
	// Unavailable lists every skipped step, prefixed by category.
	Unavailable []Unavailable `json:"unavailable,omitempty"`
	// Warnings carries non-fatal load problems.
	Warnings []string `json:"warnings,omitempty"`
}

// Section returns the section for c, if the report has one.
func (r *Report) Section(c Category) (Section, bool) {
	if r == nil {
		return Section{}, false
	}
	for _, s := range r.Sections {
		if s.Category == c {
			return s, true
		}
	}
	return Section{}, false
}
