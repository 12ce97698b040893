package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/azhar2201/achievement-tracker/internal/models"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// RemoteGenerator produces resumes through an OpenAI-compatible
// chat-completions endpoint.
type RemoteGenerator struct {
	client *openai.Client
	model  string
	logger *logrus.Logger
}

// NewRemoteGenerator builds the remote generator. Returns nil when no API
// key is configured; callers treat a nil generator as "use the fallback".
func NewRemoteGenerator(apiKey, baseURL, model string, logger *logrus.Logger) *RemoteGenerator {
	if apiKey == "" {
		return nil
	}

	var client *openai.Client
	if baseURL != "" {
		config := openai.DefaultConfig(apiKey)
		config.BaseURL = baseURL
		client = openai.NewClientWithConfig(config)
	} else {
		client = openai.NewClient(apiKey)
	}

	return &RemoteGenerator{
		client: client,
		model:  model,
		logger: logger,
	}
}

// Name identifies this generator in responses and logs.
func (g *RemoteGenerator) Name() string {
	return "ai"
}

// Generate asks the model for a resume in the fixed JSON shape and parses
// the structured result.
func (g *RemoteGenerator) Generate(ctx context.Context, req *Request) (*models.Resume, error) {
	prompt := g.buildPrompt(req)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a professional resume writer for university students. Respond strictly with the JSON structure requested by the user, with no commentary.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("resume completion request failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("resume completion returned no choices")
	}

	resume, err := parseResume(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	resume.GeneratedBy = g.Name()
	if resume.PersonalInfo.Name == "" {
		resume.PersonalInfo = personalInfo(req)
	}

	g.logger.WithFields(logrus.Fields{
		"roll_number": req.RollNumber,
		"projects":    len(resume.Projects),
		"experience":  len(resume.Experience),
	}).Info("Remote resume generated")
	return resume, nil
}

// Complete proxies a single prompt to the model and returns its plain text
// answer. Used by the AI helper endpoints.
func (g *RemoteGenerator) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *RemoteGenerator) buildPrompt(req *Request) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Build a resume for %s (roll number %s) from their validated achievements.\n\n", req.DisplayName, req.RollNumber))

	if req.Profile != nil {
		b.WriteString("Profile:\n")
		if req.Profile.Degree != "" {
			b.WriteString(fmt.Sprintf("- Degree: %s, %s (%s)\n", req.Profile.Degree, req.Profile.Institution, req.Profile.GraduationYear))
		}
		if len(req.Profile.Skills) > 0 {
			b.WriteString("- Self-reported skills: " + strings.Join(req.Profile.Skills, ", ") + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Validated achievements:\n")
	b.WriteString(FormatAchievements(req.Achievements))
	b.WriteString("\n")

	b.WriteString("Routing rules: category academic goes under education; project and research under projects; internship and leadership under experience; sports, cultural and volunteer under extracurricularActivities; everything else under achievements. ")
	b.WriteString("Extract concrete technologies mentioned in the achievement text into the technicalSkills buckets.\n\n")

	b.WriteString("Return exactly this JSON shape:\n")
	b.WriteString(resumeFormat)
	return b.String()
}

const resumeFormat = `{
  "personalInfo": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "github": "", "portfolio": ""},
  "objective": "",
  "education": [{"degree": "", "institution": "", "year": "", "grade": "", "highlight": ""}],
  "technicalSkills": {"programmingLanguages": [], "frameworksAndLibraries": [], "toolsAndPlatforms": [], "otherSkills": []},
  "projects": [{"title": "", "description": "", "date": "", "link": ""}],
  "experience": [{"role": "", "organization": "", "duration": "", "description": ""}],
  "achievements": [{"title": "", "issuer": "", "date": "", "level": ""}],
  "extracurricularActivities": []
}`

// parseResume extracts the JSON object from the model output. Models
// occasionally wrap the payload in prose, so scan for the outermost braces.
func parseResume(content string) (*models.Resume, error) {
	jsonStart := strings.Index(content, "{")
	jsonEnd := strings.LastIndex(content, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("no JSON object found in model output")
	}

	var resume models.Resume
	if err := json.Unmarshal([]byte(content[jsonStart:jsonEnd+1]), &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %v", err)
	}
	return &resume, nil
}
