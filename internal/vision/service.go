package vision

import (
	"context"
	"fmt"
	"os"

	"github.com/gartenlabs/lifegarden/internal/checklist"
)

const checklistSystemPrompt = `You are given an image containing only a checklist, where each item consists of a label and a checkbox.

The checkboxes can appear in two states:

* empty -> "checkboxIsFilled": false
* marked, crossed, filled, or circled -> "checkboxIsFilled": true

Extract each checklist item and return it in the following JSON format:

{
  "content": [
    {"label": "Partnerschaft", "checkboxIsFilled": true},
    {"label": "Kinder", "checkboxIsFilled": false}
  ]
}

Be robust: if a checkbox is clearly marked in any way, treat it as filled.
Only return the JSON. Ignore anything else.`

// ChecklistService extracts a checklist from a photographed page. It decides
// which plants the user ticked; watering validation stays with the core.
type ChecklistService interface {
	AnalyzeImage(ctx context.Context, imagePath string) (*checklist.Document, error)
}

type checklistService struct {
	client Client
}

// NewChecklistService creates a ChecklistService over a vision client.
func NewChecklistService(client Client) ChecklistService {
	return &checklistService{client: client}
}

func (s *checklistService) AnalyzeImage(ctx context.Context, imagePath string) (*checklist.Document, error) {
	img, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	resp, err := s.client.Generate(ctx, GenerateRequest{
		SystemPrompt: checklistSystemPrompt,
		UserPrompt:   "Extract the checklist from this image.",
		Images:       [][]byte{img},
	})
	if err != nil {
		return nil, err
	}

	doc, err := ExtractJSON[checklist.Document](resp.Text, validateChecklist)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func validateChecklist(d checklist.Document) error {
	if len(d.Items) == 0 {
		return fmt.Errorf("checklist has no items")
	}
	for i, item := range d.Items {
		if item.Label == "" {
			return fmt.Errorf("item %d has an empty label", i)
		}
	}
	return nil
}
