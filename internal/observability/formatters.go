// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/omkar/resume-checker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintProfile(profile *types.ParsedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", profile.Phone))
	sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Location))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", profile.ExperienceLevel))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(profile.Skills)))
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(profile.Education)))
	sb.WriteString(fmt.Sprintf("Projects:           %d", len(profile.Projects)))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintPredictions outputs the predicted roles with their confidence scores.
func (p *Printer) PrintPredictions(predictions types.RolePrediction) {
	if len(predictions.Roles) == 0 {
		return
	}

	var sb strings.Builder
	for i, role := range predictions.Roles {
		score := 0.0
		if i < len(predictions.Scores) {
			score = predictions.Scores[i]
		}
		sb.WriteString(fmt.Sprintf("%d. %-30s %5.1f%%\n", i+1, role, score))
	}

	p.printBox("PREDICTED ROLES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSimilarity outputs resume-vs-job similarity scores.
func (p *Printer) PrintSimilarity(scores types.SimilarityResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("TF-IDF similarity:   %5.1f\n", scores.TFIDFSimilarity))
	sb.WriteString(fmt.Sprintf("Keyword similarity:  %5.1f\n", scores.KeywordSimilarity))
	sb.WriteString(fmt.Sprintf("Combined score:      %5.1f", scores.CombinedScore))

	p.printBox("JOB SIMILARITY", sb.String())
}

// PrintATS outputs the ATS score with its category breakdown and the top
// recommendations.
func (p *Printer) PrintATS(result *types.ATSResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.1f / 100\n\n", result.Score))

	for _, category := range []string{
		"Personal Information",
		"Professional Summary",
		"Skills Section",
		"Work Experience",
		"Education",
		"Projects",
		"Job Matching",
	} {
		if points, ok := result.Breakdown[category]; ok {
			sb.WriteString(fmt.Sprintf("  %-22s %5.1f\n", category, points))
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Recommendations[i]))
		}
		if len(result.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTips outputs resume optimization tips.
func (p *Printer) PrintTips(tips []string) {
	if len(tips) == 0 {
		return
	}

	var sb strings.Builder
	for i, tip := range tips {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, tip))
	}

	p.printBox("OPTIMIZATION TIPS", strings.TrimSuffix(sb.String(), "\n"))
}
