// Package investidata triages spreadsheet exports of mobile-forensics
// extractions: it classifies sheets and columns, extracts facts and
// summarizes them into a report.
package investidata

import (
	"time"

	"github.com/ukaji3/investidata-go/pkg/investidata/classify"
	"github.com/ukaji3/investidata-go/pkg/investidata/facts"
	"github.com/ukaji3/investidata-go/pkg/investidata/lexicon"
	"github.com/ukaji3/investidata-go/pkg/investidata/parser"
)

// Options configures loading and analysis.
type Options struct {
	// Tables holds the keyword tables. Zero value means lexicon.Default().
	Tables *lexicon.Tables
	// TopN bounds ranked tables in the report. Non-positive means 10.
	TopN int
	// FoldAccents makes sheet and column matching ignore diacritics.
	FoldAccents bool
	// Header controls header row detection.
	Header parser.HeaderParams
	// Location interprets timestamps without a zone. Nil means UTC.
	Location *time.Location
	// Now stamps the report. Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		TopN:   facts.DefaultTopN,
		Header: parser.DefaultHeaderParams(),
	}
}

// KeywordTables returns the configured tables or the defaults.
func (o Options) KeywordTables() lexicon.Tables {
	if o.Tables != nil {
		return *o.Tables
	}
	return lexicon.Default()
}

// EffectiveTopN returns TopN, defaulted when non-positive.
func (o Options) EffectiveTopN() int {
	if o.TopN <= 0 {
		return facts.DefaultTopN
	}
	return o.TopN
}

func (o Options) normalizer() classify.Normalizer {
	return classify.Normalizer{FoldAccents: o.FoldAccents}
}

func (o Options) headerParams() parser.HeaderParams {
	if o.Header == (parser.HeaderParams{}) {
		return parser.DefaultHeaderParams()
	}
	return o.Header
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
