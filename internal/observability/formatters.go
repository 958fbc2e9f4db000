// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out   io.Writer
	box   lipgloss.Style
	title lipgloss.Style
	muted lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer. Colors
// are only emitted when the writer is a terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out: out,
		box: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1).
			Width(boxWidth - 2),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = truncate(line, boxWidth-6)
	}
	body := p.title.Render(title) + "\n\n" + strings.Join(lines, "\n")
	fmt.Fprintln(p.out, p.box.Render(body))
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// orDash renders empty fields visibly
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PrintParseResult outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintParseResult(result *types.ParseResult) {
	if result == nil {
		return
	}

	info := result.PersonalInfo
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", orDash(info.Name)))
	sb.WriteString(fmt.Sprintf("Title:  %s\n", orDash(info.Title)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(info.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orDash(info.Phone)))
	sb.WriteString("\nSummary:\n")
	for _, line := range info.Summary {
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}
	p.printBox("PERSONAL INFO", strings.TrimSuffix(sb.String(), "\n"))

	p.printExperiences(result.Experiences)
	p.printEducation(result.Education)
	p.printSkills(result.Skills)
}

func (p *Printer) printExperiences(entries []types.ExperienceEntry) {
	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, orDash(e.Title)))
		sb.WriteString(fmt.Sprintf("    %s  %s\n", orDash(e.Company), p.muted.Render(e.Period)))
		bullets := 0
		for _, d := range e.Description {
			if d != "" {
				bullets++
			}
		}
		sb.WriteString(fmt.Sprintf("    %d bullet(s)\n", bullets))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}
	p.printBox(fmt.Sprintf("EXPERIENCE (%d)", len(entries)), strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printEducation(entries []types.EducationEntry) {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("• %s\n", orDash(e.Degree)))
		details := orDash(e.Institution)
		if e.Year != "" {
			details += ", " + e.Year
		}
		if e.GPA != "" {
			details += " (" + e.GPA + ")"
		}
		sb.WriteString(fmt.Sprintf("  %s\n", details))
	}
	p.printBox(fmt.Sprintf("EDUCATION (%d)", len(entries)), strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printSkills(skills []types.SkillEntry) {
	var sb strings.Builder
	for _, s := range skills {
		sb.WriteString(fmt.Sprintf("• %-30s %s\n", orDash(s.Name), s.Proficiency))
	}
	p.printBox(fmt.Sprintf("SKILLS (%d)", len(skills)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSource outputs where the parsed text came from.
func (p *Printer) PrintSource(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:     %s\n", orDash(meta.Source)))
	sb.WriteString(fmt.Sprintf("Format:     %s\n", meta.Format))
	sb.WriteString(fmt.Sprintf("Characters: %d\n", meta.Characters))
	sb.WriteString(fmt.Sprintf("SHA-256:    %s", truncate(meta.Hash, 16)))

	p.printBox("INPUT", sb.String())
}

// PrintBatchSummary outputs the totals of a batch run and the files that failed.
func (p *Printer) PrintBatchSummary(parsed int, failures map[string]error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parsed: %d\n", parsed))
	sb.WriteString(fmt.Sprintf("Failed: %d", len(failures)))
	if len(failures) > 0 {
		sb.WriteString("\n")
		names := slices.Sorted(maps.Keys(failures))
		for i, name := range names {
			if i == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("\n... and %d more", len(names)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("\n✗ %s: %v", name, failures[name]))
		}
	}

	title := "BATCH COMPLETE"
	if len(failures) > 0 {
		title = "BATCH COMPLETE WITH ERRORS"
	}
	p.printBox(title, sb.String())
}
