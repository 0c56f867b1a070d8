package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLookupShapes(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantKind    ResultKind
		wantDefs    []string
		wantRelated []string
	}{
		{
			name:     "first entry definitions win",
			body:     `[{"shortdef":["one","two"]},{"shortdef":["three"]}]`,
			wantKind: ResultDefinitions,
			wantDefs: []string{"one", "two"},
		},
		{
			name:        "alternate spellings",
			body:        `["diabetes","diabetic"]`,
			wantKind:    ResultRelated,
			wantRelated: []string{"diabetes", "diabetic"},
		},
		{
			name:     "empty shortdef is not a definition",
			body:     `[{"meta":{"id":"x"},"shortdef":[]}]`,
			wantKind: ResultNotFound,
		},
		{
			name:     "objects without shortdef",
			body:     `[{"meta":{"id":"x"}}]`,
			wantKind: ResultNotFound,
		},
		{
			name:     "empty array",
			body:     ` [] `,
			wantKind: ResultNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseLookup("term", []byte(tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, res.Kind)
			assert.Equal(t, tt.wantDefs, res.Definitions)
			assert.Equal(t, tt.wantRelated, res.RelatedTerms)
			assert.False(t, len(res.Definitions) > 0 && len(res.RelatedTerms) > 0)
		})
	}
}

func TestDisplayHeadword(t *testing.T) {
	var e *Entry
	assert.Equal(t, "", e.DisplayHeadword())

	e = &Entry{}
	e.Headword.Text = "my*o*car*di*al"
	assert.Equal(t, "myocardial", e.DisplayHeadword())
}
