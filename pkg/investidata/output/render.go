package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/investidata-go/pkg/investidata/models"
	"github.com/ukaji3/investidata-go/pkg/investidata/report"
)

// Palette
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8A8A8A"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFAF00"}
	colorAlert  = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
)

// maxBar is the widest hourly activity bar.
const maxBar = 30

// RenderOptions configures Render.
type RenderOptions struct {
	// Topic selects the view. Empty means TopicSummary.
	Topic Topic
	// Width bounds table width. Non-positive means TerminalWidth().
	Width int
	// Color enables ANSI styling.
	Color bool
}

// Render writes one topic of rep to w as styled terminal text.
func Render(w io.Writer, rep *models.Report, opts RenderOptions) error {
	topic := opts.Topic
	if topic == "" {
		topic = TopicSummary
	}
	if !topic.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}
	if rep == nil {
		rep = &models.Report{}
	}
	r := newRenderer(w, opts)

	var blocks []string
	switch topic {
	case TopicSummary:
		blocks = r.summary(rep)
	case TopicDevice:
		blocks = append(r.device(rep.Device), r.section(rep, models.CategoryDevice)...)
	case TopicAccounts:
		blocks = append(r.accounts(rep.Accounts), r.section(rep, models.CategoryAccounts)...)
	case TopicApps:
		blocks = append(r.apps(rep.Apps), r.section(rep, models.CategoryApps)...)
	case TopicLocations:
		blocks = append(r.locations(rep.Locations), r.section(rep, models.CategoryLocations)...)
	default:
		blocks = r.section(rep, models.Category(topic))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

type renderer struct {
	width  int
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
	alert  lipgloss.Style
}

func newRenderer(w io.Writer, opts RenderOptions) *renderer {
	lr := lipgloss.NewRenderer(w)
	width := opts.Width
	if width <= 0 {
		width = TerminalWidth()
	}
	r := &renderer{
		width:  width,
		title:  lr.NewStyle(),
		header: lr.NewStyle().Padding(0, 1),
		cell:   lr.NewStyle().Padding(0, 1),
		border: lr.NewStyle(),
		muted:  lr.NewStyle(),
		warn:   lr.NewStyle(),
		alert:  lr.NewStyle(),
	}
	if opts.Color {
		r.title = r.title.Bold(true).Foreground(colorAccent)
		r.header = r.header.Bold(true).Foreground(colorAccent)
		r.border = r.border.Foreground(colorMuted)
		r.muted = r.muted.Foreground(colorMuted)
		r.warn = r.warn.Foreground(colorWarn)
		r.alert = r.alert.Bold(true).Foreground(colorAlert)
	}
	return r
}

func (r *renderer) table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.border).
		Width(r.width).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			return r.cell
		}).
		String()
}

func (r *renderer) summary(rep *models.Report) []string {
	meta := rep.Metadata
	blocks := []string{
		r.title.Render("Forensic triage: " + orDash(meta.BookName)),
		r.muted.Render(fmt.Sprintf("generated %s · %d sheets · top %d · alert rows %d",
			meta.GeneratedAt.Format("2006-01-02 15:04:05"), len(meta.SheetNames), meta.TopN, report.TotalHits(rep))),
		"",
	}

	var rows [][]string
	var alerts [][]string
	for _, c := range models.Categories {
		sheet, ok := meta.Mapping.Sheet(c)
		if !ok {
			rows = append(rows, []string{string(c), "-", "", "", ""})
			continue
		}
		sec, _ := rep.Section(c)
		res := sec.Result
		if res == nil {
			res = &models.ExtractionResult{}
		}
		rows = append(rows, []string{
			string(c), sheet,
			fmt.Sprint(res.TotalRows), fmt.Sprint(res.HitRows), percent(sec.HitPercent),
		})
		for _, h := range res.Hits {
			if h.Flagged() {
				alerts = append(alerts, []string{string(c), h.Label, fmt.Sprint(h.Rows)})
			}
		}
	}
	blocks = append(blocks, r.table([]string{"Category", "Sheet", "Rows", "Hits", "Hit %"}, rows))

	if len(alerts) > 0 {
		blocks = append(blocks, "", r.alert.Render("Keyword alerts"), r.table([]string{"Category", "Alert", "Rows"}, alerts))
	}
	blocks = append(blocks, r.notes(rep.Unavailable)...)
	for _, w := range rep.Warnings {
		blocks = append(blocks, r.warn.Render("warning: "+w))
	}
	return blocks
}

func (r *renderer) notes(notes []models.Unavailable) []string {
	if len(notes) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(notes))
	for _, u := range notes {
		rows = append(rows, []string{u.Step, u.Reason})
	}
	return []string{"", r.muted.Render("Not available"), r.table([]string{"Step", "Reason"}, rows)}
}

func (r *renderer) section(rep *models.Report, c models.Category) []string {
	sec, ok := rep.Section(c)
	if !ok || sec.Result == nil {
		return []string{r.warn.Render(fmt.Sprintf("%s: sheet not found", c))}
	}
	res := sec.Result
	blocks := []string{
		"",
		r.title.Render(fmt.Sprintf("%s · %s", c, orDash(sec.Sheet))),
		r.muted.Render(fmt.Sprintf("%d rows · %d with alerts (%s)", res.TotalRows, res.HitRows, percent(sec.HitPercent))),
	}

	if len(res.Fields) > 0 {
		var rows [][]string
		for _, role := range sortedRoles(res.Fields) {
			rows = append(rows, []string{string(role), res.Fields[role].Label})
		}
		blocks = append(blocks, r.table([]string{"Role", "Column"}, rows))
	}

	var hits [][]string
	for _, h := range res.Hits {
		hits = append(hits, []string{h.Label, fmt.Sprint(h.Rows)})
	}
	if len(hits) > 0 {
		blocks = append(blocks, r.table([]string{"Alert", "Rows"}, hits))
	}

	if il := res.Interlocutors; il != nil {
		blocks = append(blocks, r.muted.Render("device: "+orDash(il.Device)))
		if len(il.Suspicious) > 0 {
			blocks = append(blocks, r.list("Suspicious interlocutors", il.Suspicious))
		}
	}

	blocks = append(blocks, r.counts("Top phones", res.TopPhones)...)
	blocks = append(blocks, r.counts("Top words", res.TopWords)...)
	blocks = append(blocks, r.counts("Top names", res.TopNames)...)
	if len(res.Emails) > 0 {
		blocks = append(blocks, r.list("E-mails", res.Emails))
	}
	if res.IMEI != "" {
		blocks = append(blocks, r.muted.Render("IMEI: "+res.IMEI))
	}
	if res.Temporal != nil {
		blocks = append(blocks, r.temporal(res.Temporal)...)
	}
	return blocks
}

func (r *renderer) counts(title string, counts []models.Count) []string {
	if len(counts) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, fmt.Sprint(c.Count)})
	}
	return []string{r.table([]string{title, "Count"}, rows)}
}

func (r *renderer) list(title string, items []string) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it})
	}
	return r.table([]string{title}, rows)
}

func (r *renderer) temporal(t *models.Temporal) []string {
	blocks := []string{r.muted.Render(fmt.Sprintf("%s: %d dated · %d malformed · %d between 00:00 and 06:00",
		t.Column.Label, t.Parsed, t.Malformed, t.Nocturnal))}

	peak := 0
	for _, c := range t.ByHour {
		peak = max(peak, c)
	}
	if peak == 0 {
		return blocks
	}
	var rows [][]string
	for h, c := range t.ByHour {
		if c == 0 {
			continue
		}
		bar := strings.Repeat("█", max(1, c*maxBar/peak))
		rows = append(rows, []string{fmt.Sprintf("%02d:00", h), fmt.Sprint(c), bar})
	}
	return append(blocks, r.table([]string{"Hour", "Rows", ""}, rows))
}

func (r *renderer) device(p *models.DeviceProfile) []string {
	if p == nil {
		return []string{r.warn.Render("device profile not available")}
	}
	return []string{
		r.title.Render("Device"),
		r.table([]string{"Field", "Value"}, [][]string{
			{"IMEI", orDash(p.IMEI)},
			{"Brand", orDash(p.Brand)},
			{"Model", orDash(p.Model)},
			{"User", orDash(p.User)},
		}),
	}
}

func (r *renderer) accounts(a *models.AccountsSummary) []string {
	if a == nil {
		return []string{r.warn.Render("accounts not available")}
	}
	blocks := []string{r.title.Render("Accounts")}
	for _, g := range []struct {
		title string
		items []string
	}{
		{"E-mails", a.Emails},
		{"Phones", a.Phones},
		{"Facebook", a.Facebook},
		{"Instagram", a.Instagram},
	} {
		if len(g.items) > 0 {
			blocks = append(blocks, r.list(g.title, g.items))
		}
	}
	return blocks
}

func (r *renderer) apps(a *models.AppsSummary) []string {
	if a == nil {
		return []string{r.warn.Render("applications not available")}
	}
	blocks := []string{
		r.title.Render("Applications"),
		r.muted.Render(fmt.Sprintf("%d installed · %d suspicious (%s)", a.Total, a.Flagged, percent(a.Percent))),
	}
	if len(a.Apps) > 0 {
		blocks = append(blocks, r.list("Suspicious applications", a.Apps))
	}
	return blocks
}

func (r *renderer) locations(l *models.LocationSummary) []string {
	if l == nil {
		return []string{r.warn.Render("coordinates not available")}
	}
	blocks := []string{
		r.title.Render("Locations"),
		r.muted.Render(fmt.Sprintf("%d points · %d malformed", l.Points, l.Malformed)),
	}
	if l.Points > 0 {
		blocks = append(blocks, r.table([]string{"", "Min", "Max"}, [][]string{
			{"Latitude", fmt.Sprintf("%.5f", l.MinLat), fmt.Sprintf("%.5f", l.MaxLat)},
			{"Longitude", fmt.Sprintf("%.5f", l.MinLon), fmt.Sprintf("%.5f", l.MaxLon)},
		}))
	}
	return blocks
}

func sortedRoles(fields models.FieldMapping) []models.Role {
	var roles []models.Role
	for _, role := range models.Roles {
		if _, ok := fields[role]; ok {
			roles = append(roles, role)
		}
	}
	return roles
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
