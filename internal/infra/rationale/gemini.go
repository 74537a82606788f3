package rationale

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

const defaultModel = "gemini-1.5-flash"

type GeminiConfig struct {
	APIKey string
	Model  string
}

// Gemini generates rationale text with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, tasks []domain.Task, prefs domain.UserPrefs, blocks []domain.Block) (string, error) {
	model := g.client.GenerativeModel(g.model)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(tasks, prefs, blocks)))
	if err != nil {
		return "", fmt.Errorf("generate rationale: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty rationale response")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected rationale response part %T", resp.Candidates[0].Content.Parts[0])
	}
	return strings.TrimSpace(string(text)), nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func buildPrompt(tasks []domain.Task, prefs domain.UserPrefs, blocks []domain.Block) string {
	var b strings.Builder
	b.WriteString("You are a daily planning assistant. Write a concise 2-3 sentence rationale ")
	b.WriteString("for the schedule below. Mention priorities and respected constraints, no lists.\n\n")

	fmt.Fprintf(&b, "Quiet hours: %s-%s. Daily cap: %d minutes.\n",
		prefs.QuietHours.Start, prefs.QuietHours.End, prefs.MaxDayMinutes)

	b.WriteString("Tasks considered:\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s (%d min, urgency %.0f, impact %.0f)\n", t.Title, t.EffortMin, t.Urgency, t.Impact)
	}

	b.WriteString("Blocks scheduled:\n")
	for _, blk := range blocks {
		fmt.Fprintf(&b, "- %s at %s\n", blk.Title, blk.Start.Format("15:04"))
	}
	return b.String()
}
