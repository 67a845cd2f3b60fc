// Package session holds the state of one interactive triage session.
package session

import (
	"fmt"
	"io"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
	"github.com/ukaji3/investidata-go/pkg/investidata/output"
)

// ErrUnknownTopic indicates a topic outside the closed topic set.
var ErrUnknownTopic = output.ErrUnknownTopic

// State is the explicit state of a session: the loaded file, the
// selected topic and the report being browsed.
type State struct {
	// Path is the analyzed workbook.
	Path string
	// Topic is the selected view.
	Topic output.Topic
	// Report is the analysis of Path, nil before analysis.
	Report *models.Report
}

// New returns a state showing the summary of rep.
func New(path string, rep *models.Report) *State {
	return &State{Path: path, Topic: output.TopicSummary, Report: rep}
}

// SetTopic selects a topic. The state is unchanged on error.
func (s *State) SetTopic(topic string) error {
	t := output.Topic(topic)
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}
	s.Topic = t
	return nil
}

// Render writes the selected topic of the report to w.
func (s *State) Render(w io.Writer, opts output.RenderOptions) error {
	opts.Topic = s.Topic
	return output.Render(w, s.Report, opts)
}
