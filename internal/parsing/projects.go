package parsing

import (
	"regexp"
	"strings"

	"github.com/omkar/resume-checker/internal/types"
)

const (
	maxProjects = 5
	// minProjectBlockLen filters out stray lines that are too short to be a
	// real project description.
	minProjectBlockLen = 20
)

var projectSectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:projects?|portfolio):?\s*`),
}

var projectSectionStopRe = regexp.MustCompile(`(?i)\n\s*(?:experience|education|skills|` + genericHeader + `)`)

// projectIndicators signal project-style lines when no projects section exists.
var projectIndicators = []string{"developed", "built", "created", "implemented", "designed"}

var projectLinkRe = regexp.MustCompile(`https?://\S+`)

var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:technologies?|tech\s+stack|built\s+using|tools?):?\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)using\s+([A-Za-z0-9+#.\s,]+)`),
}

var techTokenRe = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9+#.]{1,15}\b`)

// ExtractProjects locates the projects section (falling back to lines with
// action-verb indicators), splits it into blocks and builds a Project per
// block: first line as title, first GitHub link (else first link) as the
// project link, and tech-stack sub-patterns for technologies. Capped at 5.
func ExtractProjects(text string) []types.Project {
	projectText := firstSectionBody(text, projectSectionHeaders, projectSectionStopRe)
	if projectText == "" {
		projectText = indicatorLines(text)
	}

	projects := []types.Project{}
	for _, block := range splitProjectBlocks(projectText) {
		block = strings.TrimSpace(block)
		if len(block) < minProjectBlockLen {
			continue
		}
		lines := strings.Split(block, "\n")
		projects = append(projects, types.Project{
			Title:        strings.TrimSpace(lines[0]),
			Description:  block,
			Technologies: extractTechnologies(block),
			ProjectLink:  extractProjectLink(block),
		})
		if len(projects) == maxProjects {
			break
		}
	}
	return projects
}

// indicatorLines collects lines that read like project work.
func indicatorLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, indicator := range projectIndicators {
			if strings.Contains(lower, indicator) {
				lines = append(lines, line)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// splitProjectBlocks starts a new block at every line that begins with a word
// character; indented and bullet lines stay attached to the previous block.
func splitProjectBlocks(text string) []string {
	var blocks []string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		if startsWithWordChar(line) && len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

func startsWithWordChar(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func extractProjectLink(block string) string {
	links := projectLinkRe.FindAllString(block, -1)
	if len(links) == 0 {
		return types.NotFound
	}
	for _, link := range links {
		if strings.Contains(strings.ToLower(link), "github") {
			return link
		}
	}
	return links[0]
}

func extractTechnologies(block string) []string {
	seen := make(map[string]bool)
	var techs []string
	for _, re := range techPatterns {
		for _, groups := range re.FindAllStringSubmatch(block, -1) {
			for _, token := range techTokenRe.FindAllString(groups[1], -1) {
				if !seen[token] {
					seen[token] = true
					techs = append(techs, token)
				}
			}
		}
	}
	if len(techs) == 0 {
		return []string{types.NotSpecified}
	}
	return techs
}
