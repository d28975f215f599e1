// Package llm provides the external-model gateway used for all resume
// reasoning. Every analysis in this system is a prompt plus optional
// attachments sent to a generative model; the deterministic code around it
// only shuttles bytes and post-processes text.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Attachment is an extra input sent alongside the prompt: either plain text
// or a binary blob (e.g. a single-page PDF for vision extraction).
type Attachment struct {
	Text     string
	MIMEType string
	Data     []byte
}

// TextAttachment wraps a text input.
func TextAttachment(text string) Attachment {
	return Attachment{Text: text}
}

// BlobAttachment wraps a binary input with its MIME type.
func BlobAttachment(mimeType string, data []byte) Attachment {
	return Attachment{MIMEType: mimeType, Data: data}
}

// Client is an abstraction over LLM providers.
// No retry or timeout policy is layered on top; failures propagate to the
// caller, which decides whether to degrade or surface them.
type Client interface {
	// Complete sends a prompt with optional attachments and returns the
	// model's raw text output.
	Complete(ctx context.Context, prompt string, attachments ...Attachment) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client. An empty model selects
// DefaultModel.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Complete sends the prompt and attachments to the configured model.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, attachments ...Attachment) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	parts := make([]genai.Part, 0, len(attachments)+1)
	parts = append(parts, genai.Text(prompt))
	for _, a := range attachments {
		if a.Data != nil {
			parts = append(parts, genai.Blob{MIMEType: a.MIMEType, Data: a.Data})
			continue
		}
		if a.Text != "" {
			parts = append(parts, genai.Text(a.Text))
		}
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
