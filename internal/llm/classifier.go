package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/omkar/resume-checker/internal/logger"
	"github.com/omkar/resume-checker/internal/roles"
)

// maxClassifyChars bounds the resume text sent to the model.
const maxClassifyChars = 8000

// RoleClassifier maps resume text to a probability distribution over known
// role labels using an LLM. It satisfies roles.Classifier; failures are
// returned as errors so the predictor can fall back to its heuristic.
type RoleClassifier struct {
	client Client
	labels []string
	log    *zap.Logger
}

// NewRoleClassifier builds a classifier over the predictor's known roles.
// log may be nil.
func NewRoleClassifier(client Client, log *zap.Logger) *RoleClassifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoleClassifier{
		client: client,
		labels: roles.KnownRoles(),
		log:    log.With(logger.ClassifierFields("gemini", client.Model())...),
	}
}

type roleScore struct {
	Role  string  `json:"role"`
	Score float64 `json:"score"`
}

type classifyResponse struct {
	Roles []roleScore `json:"roles"`
}

// Classify asks the model for a score distribution over the known roles.
// Labels outside the candidate set and scores outside [0,1] are dropped.
func (c *RoleClassifier) Classify(ctx context.Context, text string) ([]roles.LabelScore, error) {
	if len([]rune(text)) > maxClassifyChars {
		text = string([]rune(text)[:maxClassifyChars])
	}

	raw, err := c.client.GenerateJSON(ctx, c.prompt(text))
	if err != nil {
		c.log.Warn("role classification failed", zap.Error(err))
		return nil, fmt.Errorf("classify roles: %w", err)
	}

	var resp classifyResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		c.log.Warn("role classification returned malformed JSON", zap.Error(err))
		return nil, fmt.Errorf("parse classification response: %w", err)
	}

	valid := make(map[string]bool, len(c.labels))
	for _, label := range c.labels {
		valid[label] = true
	}

	distribution := make([]roles.LabelScore, 0, len(resp.Roles))
	for _, entry := range resp.Roles {
		if !valid[entry.Role] || entry.Score < 0 || entry.Score > 1 {
			continue
		}
		distribution = append(distribution, roles.LabelScore{Label: entry.Role, Score: entry.Score})
	}
	if len(distribution) == 0 {
		return nil, fmt.Errorf("classification response contained no usable roles")
	}

	c.log.Debug("role classification succeeded", zap.Int("roles", len(distribution)))
	return distribution, nil
}

func (c *RoleClassifier) prompt(text string) string {
	var b strings.Builder
	b.WriteString("You are a resume screening assistant. Given the resume text below, ")
	b.WriteString("score how well the candidate fits each of these roles on a 0.0-1.0 scale.\n\n")
	b.WriteString("Roles:\n")
	for _, label := range c.labels {
		b.WriteString("- ")
		b.WriteString(label)
		b.WriteString("\n")
	}
	b.WriteString("\nRespond with JSON only, in this shape:\n")
	b.WriteString(`{"roles": [{"role": "<role name>", "score": <0.0-1.0>}]}`)
	b.WriteString("\nInclude only roles with score above 0.1, best first.\n\nResume:\n")
	b.WriteString(text)
	return b.String()
}
