package facts

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

var (
	intlPhoneRE = regexp.MustCompile(`\+\d{1,3}[\s-]?\d{2,4}[\s-]?\d{3}[\s-]?\d{3,4}`)
	facebookRE  = regexp.MustCompile(`(?i)(?:facebook\.com/|fb\s*[:@]\s*)([A-Za-z0-9._-]{3,})`)
	instagramRE = regexp.MustCompile(`(?i)(?:instagram\.com/|ig\s*[:@]\s*|@)([A-Za-z0-9._-]{3,})`)
)

// ExtractDevice reads the device profile from the first row holding a
// value for each mapped column. The IMEI falls back to the first 15-digit
// run anywhere in the table.
func ExtractDevice(t *models.Table, fields models.FieldMapping) *models.DeviceProfile {
	p := &models.DeviceProfile{
		IMEI:  firstValue(t, fields, models.RoleIMEI),
		Brand: firstValue(t, fields, models.RoleBrand),
		Model: firstValue(t, fields, models.RoleModel),
		User:  firstValue(t, fields, models.RoleUser),
	}
	if p.IMEI == "" {
		p.IMEI = IMEI(Flatten(t))
	}
	return p
}

func firstValue(t *models.Table, fields models.FieldMapping, r models.Role) string {
	ref, ok := fields.Lookup(r)
	if !ok {
		return ""
	}
	for i := 0; i < t.Len(); i++ {
		v := strings.TrimSpace(t.Text(i, ref.Index))
		if v != "" && !strings.EqualFold(v, "nan") {
			return v
		}
	}
	return ""
}

// ExtractAccounts scans every row of an accounts table for e-mail
// addresses, international phone numbers and social network handles.
func ExtractAccounts(t *models.Table) *models.AccountsSummary {
	var emails, phones, fb, ig []string
	for i := 0; i < t.Len(); i++ {
		text := t.RowText(i)
		emails = append(emails, Emails(text)...)
		for _, m := range intlPhoneRE.FindAllString(text, -1) {
			phones = append(phones, "+"+nonDigitsRE.ReplaceAllString(m, ""))
		}
		fb = append(fb, submatches(facebookRE, text)...)
		// "@" handles must not pick up e-mail domains.
		ig = append(ig, submatches(instagramRE, emailRE.ReplaceAllString(text, " "))...)
	}
	return &models.AccountsSummary{
		Emails:    sortedSet(emails),
		Phones:    sortedSet(phones),
		Facebook:  sortedSet(fb),
		Instagram: sortedSet(ig),
	}
}

func submatches(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// ScanApps flags the rows of an apps table where any of cols contains a
// suspicious term, case-insensitively.
// The flagged app is reported by its name column when name is non-nil.
func ScanApps(t *models.Table, cols []models.ColumnRef, name *models.ColumnRef, suspicious []string) *models.AppsSummary {
	out := &models.AppsSummary{Total: t.Len()}
	if len(cols) == 0 || t.Len() == 0 {
		return out
	}
	terms := make([]string, 0, len(suspicious))
	for _, s := range suspicious {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			terms = append(terms, s)
		}
	}

	var flagged []string
	for i := 0; i < t.Len(); i++ {
		if !rowContainsAny(t, i, cols, terms) {
			continue
		}
		out.Flagged++
		label := ""
		if name != nil {
			label = t.Text(i, name.Index)
		}
		if label == "" {
			label = t.Text(i, cols[0].Index)
		}
		flagged = append(flagged, label)
	}
	out.Apps = sortedSet(flagged)
	out.Percent = float64(out.Flagged) / float64(out.Total) * 100
	return out
}

func rowContainsAny(t *models.Table, i int, cols []models.ColumnRef, terms []string) bool {
	for _, c := range cols {
		v := strings.ToLower(t.Text(i, c.Index))
		if v == "" {
			continue
		}
		for _, term := range terms {
			if strings.Contains(v, term) {
				return true
			}
		}
	}
	return false
}

// Locations summarizes the usable coordinates of t. Non-numeric or
// out-of-range values are counted as malformed and excluded.
func Locations(t *models.Table, lat, lon models.ColumnRef) *models.LocationSummary {
	out := &models.LocationSummary{}
	for i := 0; i < t.Len(); i++ {
		la, okLat := coordinate(t.Get(i, lat.Index), 90)
		lo, okLon := coordinate(t.Get(i, lon.Index), 180)
		if !okLat || !okLon {
			out.Malformed++
			continue
		}
		if out.Points == 0 {
			out.MinLat, out.MaxLat, out.MinLon, out.MaxLon = la, la, lo, lo
		} else {
			out.MinLat = min(out.MinLat, la)
			out.MaxLat = max(out.MaxLat, la)
			out.MinLon = min(out.MinLon, lo)
			out.MaxLon = max(out.MaxLon, lo)
		}
		out.Points++
	}
	return out
}

func coordinate(v any, limit float64) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int64:
		f = float64(x)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(x), ",", ".")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f < -limit || f > limit {
		return 0, false
	}
	return f, true
}
