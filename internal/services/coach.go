package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/platform/openai"
	"github.com/yungbote/careerpath-backend/internal/types"
)

// DiscoveryQuestion is one generated career-discovery question.
type DiscoveryQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Type     string `json:"type"`
	FollowUp string `json:"followUp"`
}

type QuestionSet struct {
	Questions []DiscoveryQuestion `json:"questions"`
}

type NarrativeResult struct {
	Narrative string `json:"narrative"`
}

type QuestionInput struct {
	Education      string `json:"education"`
	WorkExperience string `json:"work_experience"`
	CurrentPhase   int    `json:"current_phase"`
}

type NarrativeInput struct {
	Education         string              `json:"education"`
	WorkExperience    string              `json:"work_experience"`
	QuestionResponses map[string]string   `json:"question_responses"`
	Achievements      []types.Achievement `json:"achievements"`
	CoreSkills        []string            `json:"core_skills"`
}

// CoachService drafts discovery questions and the career narrative via
// the text-generation collaborator. Any collaborator failure is absorbed
// here: callers always receive a usable payload, never the error.
type CoachService interface {
	GenerateQuestions(ctx context.Context, input QuestionInput) QuestionSet
	GenerateNarrative(ctx context.Context, input NarrativeInput) NarrativeResult
}

type coachService struct {
	ai  openai.Client
	log *logger.Logger
}

// NewCoachService accepts a nil client; every call then serves the
// fallback payload, which keeps local setups working without an API key.
func NewCoachService(ai openai.Client, log *logger.Logger) CoachService {
	serviceLog := log.With("service", "CoachService")
	return &coachService{ai: ai, log: serviceLog}
}

func (cs *coachService) GenerateQuestions(ctx context.Context, input QuestionInput) QuestionSet {
	if cs.ai == nil {
		return fallbackQuestions()
	}

	system := "You are a career coach AI that generates personalized discovery questions. Always respond with valid JSON."
	user := fmt.Sprintf(`Based on the following user profile, generate 3 personalized career discovery questions:

Education: %s
Work Experience: %s
Career Phase: %d

Generate questions that help understand career motivations, strengths, and aspirations. Each question should be thoughtful and open-ended. Return as JSON with format:
{
  "questions": [
    {
      "id": 1,
      "question": "Main question text",
      "type": "open",
      "followUp": "Follow-up prompt"
    }
  ]
}`, orDefault(input.Education, "Not provided"), orDefault(input.WorkExperience, "Not provided"), input.CurrentPhase)

	obj, err := cs.ai.GenerateJSON(ctx, system, user)
	if err != nil {
		cs.log.Warn("Question generation failed, serving fallback", "error", err)
		return fallbackQuestions()
	}

	var out QuestionSet
	if err := remarshal(obj, &out); err != nil || len(out.Questions) == 0 {
		cs.log.Warn("Question generation returned unusable payload, serving fallback", "error", err)
		return fallbackQuestions()
	}
	return out
}

func (cs *coachService) GenerateNarrative(ctx context.Context, input NarrativeInput) NarrativeResult {
	if cs.ai == nil {
		return fallbackNarrative()
	}

	responsesJSON, _ := json.Marshal(input.QuestionResponses)
	achievementsJSON, _ := json.Marshal(input.Achievements)
	skillsJSON, _ := json.Marshal(input.CoreSkills)

	system := "You are a professional career narrative writer. Create compelling, concise career stories. Always respond with valid JSON."
	user := fmt.Sprintf(`Create a professional career narrative based on this information:

Education: %s
Work Experience: %s
Question Responses: %s
Achievements: %s
Core Skills: %s

Write a compelling 2-3 sentence career narrative that highlights strengths, experiences, and potential. Return as JSON:
{
  "narrative": "Professional narrative text here"
}`, orDefault(input.Education, "Not specified"), orDefault(input.WorkExperience, "Not specified"),
		responsesJSON, achievementsJSON, skillsJSON)

	obj, err := cs.ai.GenerateJSON(ctx, system, user)
	if err != nil {
		cs.log.Warn("Narrative generation failed, serving fallback", "error", err)
		return fallbackNarrative()
	}

	var out NarrativeResult
	if err := remarshal(obj, &out); err != nil || strings.TrimSpace(out.Narrative) == "" {
		cs.log.Warn("Narrative generation returned unusable payload, serving fallback", "error", err)
		return fallbackNarrative()
	}
	return out
}

func fallbackQuestions() QuestionSet {
	return QuestionSet{
		Questions: []DiscoveryQuestion{
			{
				ID:       1,
				Question: "What specific achievements in your career are you most proud of?",
				Type:     "open",
				FollowUp: "What skills did you develop through this achievement?",
			},
			{
				ID:       2,
				Question: "What type of work environments help you perform at your best?",
				Type:     "open",
				FollowUp: "How does this relate to your future career goals?",
			},
			{
				ID:       3,
				Question: "What are the biggest professional challenges you've overcome?",
				Type:     "open",
				FollowUp: "What did you learn from these experiences?",
			},
		},
	}
}

func fallbackNarrative() NarrativeResult {
	return NarrativeResult{
		Narrative: "A dedicated professional with diverse experiences and proven achievements. " +
			"Demonstrates strong commitment to professional growth and achievement. " +
			"Ready to leverage their unique combination of skills and experiences in their next career opportunity.",
	}
}

func remarshal(obj map[string]any, out any) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
