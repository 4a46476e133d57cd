package service

import (
	"fmt"

	"github.com/haoyu/ai-notebook/internal/config"
)

// AIService holds the placeholder text transforms. Each one is deterministic
// and will be swapped for real model calls once the OpenAI integration lands.
type AIService struct {
	cfg *config.Config
}

func NewAIService(cfg *config.Config) *AIService {
	return &AIService{cfg: cfg}
}

// Polish returns a marked-up variant of the input text.
func (s *AIService) Polish(text string) string {
	return fmt.Sprintf("[Polished] %s", text)
}

// Continue appends a placeholder continuation to the input text.
func (s *AIService) Continue(text string) string {
	return fmt.Sprintf("%s [AI-continued content]", text)
}

type Insight struct {
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
	Questions []string `json:"questions"`
}

// GenerateInsight returns a fixed-shape placeholder analysis of the content.
func (s *AIService) GenerateInsight(content string) *Insight {
	return &Insight{
		Summary:  "This is a placeholder summary of the note...",
		Keywords: []string{"keyword 1", "keyword 2", "keyword 3"},
		Questions: []string{
			"Question 1: a reflection prompt based on the note",
			"Question 2: a reflection prompt based on the note",
		},
	}
}
