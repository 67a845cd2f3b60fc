package facts

import (
	"github.com/ukaji3/investidata-go/pkg/investidata/lexicon"
	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// Options configures Extract.
type Options struct {
	// TopN bounds every ranked table. Non-positive means DefaultTopN.
	TopN int
	// Stopwords are excluded from the word ranking.
	Stopwords []string
	// Dates parses the date column.
	Dates DateParser
	// Roles lists the roles the table's category defines. Steps needing
	// a role outside this table are skipped without a note. Nil means
	// every step applies.
	Roles lexicon.RoleTable
}

func (o Options) applies(r models.Role) bool {
	if o.Roles == nil {
		return true
	}
	_, ok := o.Roles[r]
	return ok
}

// Extract pulls every fact out of t. A nil table yields an empty result.
// Steps whose column is missing are skipped and noted in Unavailable;
// no step failure aborts the others.
func Extract(t *models.Table, fields models.FieldMapping, keywords *Scanner, opts Options) *models.ExtractionResult {
	res := &models.ExtractionResult{}
	if t == nil {
		return res
	}
	res.Sheet = t.Name
	res.Fields = fields
	res.TotalRows = t.Len()

	text := Flatten(t)
	phones := phoneMatches(text)
	res.Phones = sortedSet(phones)
	res.Emails = Emails(text)
	res.IMEI = IMEI(text)
	res.TopPhones = Rank(phones, opts.TopN)

	body, hasBody := fields.Lookup(models.RoleBody)
	if hasBody {
		bodyText := FlattenColumns(t, []models.ColumnRef{body})
		res.TopWords = Rank(Words(bodyText, opts.Stopwords), opts.TopN)
		res.TopNames = Rank(ProperNouns(bodyText), opts.TopN)
	} else {
		res.TopNames = Rank(ProperNouns(text), opts.TopN)
	}

	if opts.applies(models.RoleBody) {
		extractHits(res, t, fields, keywords, opts)
	}

	if opts.applies(models.RoleDate) {
		if col, err := fields.Require(models.RoleDate, t.Name); err != nil {
			res.Unavailable = append(res.Unavailable, models.NewUnavailable("temporal", err))
		} else {
			res.Temporal = Bucket(t, col, opts.Dates)
		}
	}
	return res
}

func extractHits(res *models.ExtractionResult, t *models.Table, fields models.FieldMapping, keywords *Scanner, opts Options) {
	body, err := fields.Require(models.RoleBody, t.Name)
	if err != nil {
		res.Unavailable = append(res.Unavailable, models.NewUnavailable("keywords", err))
		return
	}
	if keywords == nil {
		keywords = NewScanner(nil)
	}
	res.Hits, res.AnyHit = keywords.ScanColumn(t, body)
	res.HitRows = CountMask(res.AnyHit)

	if !opts.applies(models.RoleFrom) || !opts.applies(models.RoleTo) {
		return
	}
	from, err := fields.Require(models.RoleFrom, t.Name)
	if err != nil {
		res.Unavailable = append(res.Unavailable, models.NewUnavailable("interlocutors", err))
		return
	}
	to, err := fields.Require(models.RoleTo, t.Name)
	if err != nil {
		res.Unavailable = append(res.Unavailable, models.NewUnavailable("interlocutors", err))
		return
	}
	res.Interlocutors = ResolveInterlocutors(t, from, to, res.AnyHit)
}
