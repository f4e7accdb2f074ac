package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nonprofit-cms-backend/internal/shared/parse"
)

type subtopic struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func TestStringListJSONArray(t *testing.T) {
	got := parse.StringList(`["water", "health", "education"]`)
	assert.Equal(t, []string{"water", "health", "education"}, got)
}

func TestStringListCommaFallback(t *testing.T) {
	got := parse.StringList("water, health ,education")
	assert.Equal(t, []string{"water", "health", "education"}, got)
}

func TestStringListMalformedJSONFallsBackToCommaSplit(t *testing.T) {
	// broken bracket syntax is treated as a plain comma list, not rejected
	got := parse.StringList(`[water, health`)
	assert.Equal(t, []string{"[water", "health"}, got)
}

func TestStringListEmpty(t *testing.T) {
	assert.Nil(t, parse.StringList(""))
	assert.Nil(t, parse.StringList("  ,  ,  "))
}

func TestObjectListArray(t *testing.T) {
	got, err := parse.ObjectList[subtopic]("subtopics",
		`[{"title":"A","body":"first"},{"title":"B","body":"second"}]`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "second", got[1].Body)
}

func TestObjectListSingleObjectWrapped(t *testing.T) {
	got, err := parse.ObjectList[subtopic]("subtopics", `{"title":"A","body":"only"}`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)
}

func TestObjectListRejectsMalformed(t *testing.T) {
	_, err := parse.ObjectList[subtopic]("subtopics", `[{"title": broken]`)
	require.Error(t, err)

	var parseErr *parse.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "subtopics", parseErr.Field)
}

func TestObjectListEmpty(t *testing.T) {
	got, err := parse.ObjectList[subtopic]("subtopics", "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParagraphsArray(t *testing.T) {
	got := parse.Paragraphs(`["first paragraph","second paragraph"]`)
	assert.Equal(t, []string{"first paragraph", "second paragraph"}, got)
}

func TestParagraphsBareStringWrapped(t *testing.T) {
	got := parse.Paragraphs("just one paragraph of text")
	assert.Equal(t, []string{"just one paragraph of text"}, got)
}

func TestParagraphsEmpty(t *testing.T) {
	assert.Nil(t, parse.Paragraphs("   "))
}

func TestObjectDecodes(t *testing.T) {
	got, err := parse.Object[subtopic]("section", `{"title":"T","body":"B"}`)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "T", got.Title)
}

func TestObjectRejectsMalformed(t *testing.T) {
	_, err := parse.Object[subtopic]("section", `{"title":`)
	var parseErr *parse.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "section", parseErr.Field)
}
