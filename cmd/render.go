package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ayanchyaziz123/career-AI/internal/analytics"
	"github.com/ayanchyaziz123/career-AI/internal/career"
	"github.com/ayanchyaziz123/career-AI/internal/session"
)

// maxGapDisplay bounds the priority-gaps callout on the dashboard; the
// analytics layer returns the full list.
const maxGapDisplay = 8

func renderResults(w io.Writer, sess *session.Session) {
	items := sess.Careers().Items()
	if len(items) == 0 {
		fmt.Fprintln(w, "No results yet. Run an analysis first.")
		return
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CAREER\tMATCH\tREADY\tSALARY\tGROWTH\tFLAGS")
	for _, m := range items {
		fmt.Fprintf(tw, "%s\t%d%%\t%d%%\t%s\t%s\t%s\n",
			m.Title, m.MatchScore, analytics.CareerReadiness(m), m.Salary, m.Growth, matchFlags(sess, m))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func matchFlags(sess *session.Session, m *career.Match) string {
	flags := make([]string, 0, 2)
	if m.Saved {
		flags = append(flags, "saved")
	}
	if sess.Compare().Contains(m.ID) {
		flags = append(flags, "compare")
	}
	return strings.Join(flags, ",")
}

func renderDetail(w io.Writer, m *career.Match, inCompare bool) {
	fmt.Fprintf(w, "\n%s\n", m.Title)
	fmt.Fprintf(w, "Match %d%% | Readiness %d%% | %s | %s%s%s\n\n",
		m.MatchScore, analytics.CareerReadiness(m), m.Salary, m.Growth,
		detailFlag(m.Saved, " | saved"), detailFlag(inCompare, " | in comparison"))
	fmt.Fprintln(w, m.Description)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SKILL\tCATEGORY\tYOU\tREQUIRED\tGAP\tSTATUS")
	for _, s := range m.Skills {
		gap := analytics.SkillGap(s)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			s.Name, s.Category, s.Level, s.Required, gapLabel(gap), analytics.GapSeverity(gap))
	}
	tw.Flush()

	completed, total := analytics.RoadmapProgress(m)
	fmt.Fprintf(w, "\nRoadmap (%d/%d phases done):\n", completed, total)
	for i, phase := range m.Roadmap {
		marker := " "
		if phase.Completed {
			marker = "x"
		}
		fmt.Fprintf(w, "  [%s] %d. %s (%s): %s\n",
			marker, i+1, phase.Title, phase.Duration, strings.Join(phase.Skills, ", "))
	}

	if len(m.Resources) > 0 {
		fmt.Fprintln(w, "\nResources:")
		for _, r := range m.Resources {
			price := "paid"
			if r.Free {
				price = "free"
			}
			fmt.Fprintf(w, "  - %s (%s, %s, %s, %s) [%s]\n",
				r.Name, r.Platform, r.Duration, r.Difficulty, price, r.SkillTag)
		}
	}
	fmt.Fprintln(w)
}

func detailFlag(set bool, label string) string {
	if set {
		return label
	}
	return ""
}

// gapLabel renders a gap the way the results views show it: positive gaps as
// "+N", anything at or below zero as ready.
func gapLabel(gap int) string {
	if gap > 0 {
		return fmt.Sprintf("+%d", gap)
	}
	return "Ready"
}

func renderDashboard(w io.Writer, sess *session.Session) {
	items := sess.Careers().Items()
	if len(items) == 0 {
		fmt.Fprintln(w, "No data yet. Complete a career analysis to populate your dashboard.")
		return
	}

	d := analytics.BuildDashboard(items)

	fmt.Fprintln(w, "\nDashboard")
	fmt.Fprintf(w, "  Overall readiness: %d%% across %d careers\n", d.OverallReadiness, len(items))
	if d.TopMatch != nil {
		fmt.Fprintf(w, "  Best match:        %s (%d%%)\n", d.TopMatch.Title, d.TopMatch.MatchScore)
	}
	fmt.Fprintf(w, "  Roadmap progress:  %d/%d phases completed\n", d.CompletedPhases, d.TotalPhases)
	fmt.Fprintf(w, "  Saved careers:     %d of %d\n\n", d.SavedCount, len(items))

	fmt.Fprintln(w, "  Category readiness:")
	for _, stat := range d.Categories {
		fmt.Fprintf(w, "    %-17s %3d%%  %s\n", stat.Category, stat.Average, categoryVerdict(stat.Average))
	}

	if len(d.PriorityGaps) > 0 {
		gaps := d.PriorityGaps
		if len(gaps) > maxGapDisplay {
			gaps = gaps[:maxGapDisplay]
		}
		fmt.Fprintf(w, "\n  Priority skill gaps: %s\n", strings.Join(gaps, ", "))
	}

	p := sess.Profile().Profile()
	skills := "not specified"
	if len(p.Skills) > 0 {
		skills = strings.Join(p.Skills, ", ")
	}
	fmt.Fprintf(w, "\n  Profile: %s | %s years | %s | %s\n\n", skills, p.Experience, p.Education, p.WorkStyle)
}

func categoryVerdict(avg int) string {
	switch {
	case avg >= 80:
		return "Strong"
	case avg >= 60:
		return "Developing"
	default:
		return "Needs work"
	}
}

func renderCompare(w io.Writer, sess *session.Session) {
	selected := sess.Compare().Resolve(sess.Careers())
	if len(selected) < 2 {
		fmt.Fprintln(w, "Select at least 2 careers to compare (toggle compare from a career's detail view).")
		return
	}

	fmt.Fprintln(w, "\nCareer comparison")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CAREER\tMATCH\tREADY\tSALARY\tGROWTH")
	for _, m := range selected {
		fmt.Fprintf(tw, "%s\t%d%%\t%d%%\t%s\t%s\n",
			m.Title, m.MatchScore, analytics.CareerReadiness(m), m.Salary, m.Growth)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nCategory readiness:")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, cat := range career.Categories {
		fmt.Fprintf(tw, "%s", cat)
		for _, m := range selected {
			fmt.Fprintf(tw, "\t%d%%", analytics.CategoryAverage([]*career.Match{m}, cat))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nSkill by skill:")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "SKILL")
	for _, m := range selected {
		fmt.Fprintf(tw, "\t%s", m.Title)
	}
	fmt.Fprintln(tw)

	for _, name := range compareSkillNames(selected) {
		fmt.Fprint(tw, name)
		for _, m := range selected {
			s := m.FindSkill(name)
			if s == nil {
				fmt.Fprint(tw, "\tN/A")
				continue
			}
			fmt.Fprintf(tw, "\t%d/%d (%s)", s.Level, s.Required, gapLabel(analytics.SkillGap(*s)))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// compareSkillNames returns the union of skill names across the selected
// careers, in order of first appearance.
func compareSkillNames(selected []*career.Match) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, m := range selected {
		for _, s := range m.Skills {
			if _, ok := seen[s.Name]; ok {
				continue
			}
			seen[s.Name] = struct{}{}
			names = append(names, s.Name)
		}
	}
	return names
}
