package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	ExplainHarvestPlan(ctx context.Context, planSummary string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const explainPrompt = `
You are helping an investor understand a tax-loss harvesting plan produced by
their portfolio software. You will receive a JSON summary of the planned
actions: positions to sell at a loss, suggested replacement securities, the
estimated tax savings, and which actions must wait out a wash-sale window.

Write a short plain-English explanation (3-5 sentences) of what the plan does
and why some actions are delayed. Do not give personalized financial advice
and do not invent numbers that are not in the summary.
`

func (h gptRepositoryHandler) ExplainHarvestPlan(ctx context.Context, planSummary string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: explainPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: planSummary,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate harvest plan commentary: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
