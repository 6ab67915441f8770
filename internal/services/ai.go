package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/models"
)

// AIService calls an external generative-text provider for project insights.
// It is optional; the rule-based generators in insight.go cover the same
// surface when no provider is configured or a call fails.
type AIService struct {
	client *openai.Client
}

// NewAIService creates a new AIService
func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// SummarizeProject asks the provider for a concise project status summary
func (s *AIService) SummarizeProject(ctx context.Context, project *models.Project, tasks []models.Task) (string, error) {
	prompt := fmt.Sprintf(`Please provide a concise summary of this project and its tasks.

Project: %s
Description: %s

Tasks:
%s

Please provide:
1. A brief overall project status
2. Breakdown of tasks by status
3. Any notable observations or suggestions

Keep it under 200 words and be professional.`,
		project.Name, project.Description, taskContext(tasks))

	return s.complete(ctx, prompt)
}

// AnswerQuestion asks the provider to answer a question about the task list
func (s *AIService) AnswerQuestion(ctx context.Context, project *models.Project, tasks []models.Task, question string) (string, error) {
	prompt := fmt.Sprintf(`Project Context:
Project Name: %s
Project Description: %s

Tasks in this project:
%s

User Question: %s

Please answer the question based on the project and task information above.
If the question cannot be answered with the available information, please say so.
Keep your response helpful and concise.`,
		project.Name, project.Description, taskContext(tasks), question)

	return s.complete(ctx, prompt)
}

func (s *AIService) complete(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func taskContext(tasks []models.Task) string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		description := t.Description
		if description == "" {
			description = "No description"
		}
		lines[i] = fmt.Sprintf("- %s (%s): %s", t.Title, t.Status, description)
	}
	return strings.Join(lines, "\n")
}
