package vision

import (
	"testing"

	"github.com/gartenlabs/lifegarden/internal/checklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_Plain(t *testing.T) {
	raw := `{"content": [{"label": "Yoga", "checkboxIsFilled": true}]}`
	doc, err := ExtractJSON[checklist.Document](raw, nil)
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Yoga", doc.Items[0].Label)
}

func TestExtractJSON_CodeFenceAndChatter(t *testing.T) {
	raw := "Here is the extracted checklist:\n```json\n" +
		`{"content": [{"label": "Joggen", "checkboxIsFilled": false}]}` +
		"\n```\nLet me know if you need anything else!"
	doc, err := ExtractJSON[checklist.Document](raw, nil)
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.False(t, doc.Items[0].CheckboxIsFilled)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `{
		"content": [
			// the first row
			{"label": "Lesen", "checkboxIsFilled": true}
		]
	}`
	doc, err := ExtractJSON[checklist.Document](raw, nil)
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"content": [{"label": "Spaß {bei} der Arbeit", "checkboxIsFilled": true}]}`
	doc, err := ExtractJSON[checklist.Document](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Spaß {bei} der Arbeit", doc.Items[0].Label)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[checklist.Document]("sorry, I cannot read this image", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	raw := `{"content": []}`
	_, err := ExtractJSON[checklist.Document](raw, validateChecklist)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
