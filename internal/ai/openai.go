package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sprintsim/backend/internal/models"
)

const storySystemPrompt = `You are an expert Agile product owner who breaks down epics into well-structured user stories.

Your task is to analyze an epic description and generate a list of user stories with:
1. Clear, actionable titles
2. Detailed descriptions
3. Story point estimates using Fibonacci sequence (1, 2, 3, 5, 8, 13, 21)

Return ONLY a valid JSON array of stories in this exact format:
[
  {
    "title": "Story title",
    "description": "Detailed description of what needs to be done",
    "points": 8
  }
]

Guidelines:
- Break down the epic into 3-8 stories
- Each story should be independently deliverable
- Points should reflect complexity (1=trivial, 13=complex, 21=very complex)
- Include stories for backend, frontend, testing, and infrastructure as needed
- Be specific and technical`

// OpenAIGenerator calls an OpenAI-compatible chat-completions endpoint to
// break an epic into stories. Every failure mode carries its own message so
// callers can surface it before falling back to the rule-based generator.
type OpenAIGenerator struct {
	BaseURL string
	Model   string
	APIKey  string
	Client  *http.Client
}

type storyPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

func (g OpenAIGenerator) GenerateStories(ctx context.Context, epicTitle, epicDescription string) ([]models.Story, error) {
	if strings.TrimSpace(g.BaseURL) == "" {
		return nil, fmt.Errorf("story AI base URL is not set")
	}
	if strings.TrimSpace(g.Model) == "" {
		return nil, fmt.Errorf("story AI model is not set")
	}

	userPrompt := fmt.Sprintf("Epic Title: %s\n\nEpic Description:\n%s\n\nGenerate user stories for this epic. Return only the JSON array, no additional text.", epicTitle, epicDescription)

	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	payload := struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
		Messages    []msg   `json:"messages"`
	}{
		Model:       g.Model,
		Temperature: 0.7,
		MaxTokens:   2000,
		Messages: []msg{
			{Role: "system", Content: storySystemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	b, _ := json.Marshal(payload)
	url := strings.TrimRight(g.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(g.APIKey) != "" {
		req.Header.Set("Authorization", "Bearer "+g.APIKey)
	}

	client := g.Client
	if client == nil {
		client = &http.Client{Timeout: 45 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("story AI request timed out")
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("story AI request timed out")
		}
		return nil, fmt.Errorf("story AI request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return nil, fmt.Errorf("story AI http error: %s: %v", resp.Status, errBody)
	}

	var res struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("story AI response is not valid JSON: %v", err)
	}
	if len(res.Choices) == 0 || strings.TrimSpace(res.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("story AI returned no content")
	}

	var parsed []storyPayload
	if err := json.Unmarshal([]byte(stripCodeFences(res.Choices[0].Message.Content)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse story AI content: %v", err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("story AI returned an empty story list")
	}

	baseID := time.Now().UnixMilli()
	stories := make([]models.Story, 0, len(parsed))
	for i, p := range parsed {
		stories = append(stories, models.Story{
			ID:          fmt.Sprintf("story-%d-%d", baseID, i+1),
			Title:       p.Title,
			Description: p.Description,
			Points:      clampPoints(p.Points),
			Status:      models.StatusPlanned,
		})
	}
	return stories, nil
}

// stripCodeFences removes markdown fence markers models like to wrap JSON in.
func stripCodeFences(content string) string {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```") {
		s = strings.ReplaceAll(s, "```json", "")
		s = strings.ReplaceAll(s, "```", "")
	}
	return strings.TrimSpace(s)
}

func clampPoints(points int) int {
	if points < 1 {
		return 1
	}
	if points > 21 {
		return 21
	}
	return points
}
