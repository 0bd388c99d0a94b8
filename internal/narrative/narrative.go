// Package narrative turns a prepared financial summary into prose advice
// using a generative model.
package narrative

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator produces a natural-language report from a pre-rendered data
// summary. Implementations must not fabricate numbers: the prompt carries
// every figure the narrative may cite.
type Generator interface {
	Generate(ctx context.Context, summary string) (string, error)
}

const systemPrompt = `You are a personal finance advisor reviewing a household ledger.
Using ONLY the figures in the data summary below, write a report with these sections:
1. Overall financial health (reference the health score and what drives it)
2. Spending patterns worth attention
3. Fixed cost and recurring commitment assessment
4. Three concrete, prioritized recommendations
Do not invent numbers that are not in the summary. Keep it under 600 words.`

// GeminiGenerator calls the Gemini API. The client reads its credentials
// from the environment (GEMINI_API_KEY or Vertex AI variables).
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

var _ Generator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(ctx context.Context, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, summary string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: systemPrompt + "\n\n--- DATA SUMMARY ---\n" + summary},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generating report: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}
	return text, nil
}
