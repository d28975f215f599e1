// Package analysis implements the follow-on resume analyses: quality check,
// JD match table, interview-question generation and fit scoring. Each
// analysis is a prompt sent to the external model; model failures are
// returned as the output text so clients can display them inline rather
// than treating the request as failed.
package analysis

import (
	"context"
	"fmt"

	"github.com/jmatsumo/resume-screener/internal/llm"
	"github.com/jmatsumo/resume-screener/internal/prompts"
)

// Fixed messages for the missing-input short circuits. These match what the
// frontend expects to display verbatim.
const (
	MissingResumeMessage = "Please parse a resume first."
	MissingInputMessage  = "Please parse a resume and provide a job description."
)

// Service runs resume analyses against the external model.
type Service struct {
	client llm.Client
}

// New creates an analysis service over the given model client.
func New(client llm.Client) *Service {
	return &Service{client: client}
}

// Check reviews resume text for red flags (fake certifications, outdated
// technologies, grammar, missing detail, readability, quantification).
func (s *Service) Check(ctx context.Context, resumeText string) string {
	if resumeText == "" {
		return MissingResumeMessage
	}
	prompt := prompts.MustGet("analysis.json", "resume_check")
	return s.complete(ctx, prompt, llm.TextAttachment(resumeText))
}

// Match compares resume skills against a job description and returns a
// four-column Markdown skill-match table.
func (s *Service) Match(ctx context.Context, resumeText, jdText string) string {
	if resumeText == "" || jdText == "" {
		return MissingInputMessage
	}
	template := prompts.MustGet("analysis.json", "jd_match")
	prompt := prompts.Format(template, map[string]string{
		"Resume": resumeText,
		"JD":     jdText,
	})
	return s.complete(ctx, prompt)
}

// Questions generates technical, behavioral and scenario-based interview
// questions with model answers, as three Markdown tables.
func (s *Service) Questions(ctx context.Context, resumeText, jdText string) string {
	if resumeText == "" || jdText == "" {
		return MissingInputMessage
	}
	prompt := prompts.MustGet("analysis.json", "interview_questions")
	return s.complete(ctx, prompt, llm.TextAttachment(resumeText), llm.TextAttachment(jdText))
}

// FitScore scores how well the resume fits the job description. The output
// is expected to begin with a "Score: X.X/10" line but is not guaranteed
// well-formed; it is stored and sorted as opaque text.
func (s *Service) FitScore(ctx context.Context, resumeText, jdText string) string {
	if resumeText == "" || jdText == "" {
		return MissingInputMessage
	}
	template := prompts.MustGet("analysis.json", "fit_score")
	prompt := prompts.Format(template, map[string]string{
		"Resume": resumeText,
		"JD":     jdText,
	})
	return s.complete(ctx, prompt)
}

func (s *Service) complete(ctx context.Context, prompt string, attachments ...llm.Attachment) string {
	out, err := s.client.Complete(ctx, prompt, attachments...)
	if err != nil {
		return fmt.Sprintf("Error generating analysis: %v", err)
	}
	return out
}
