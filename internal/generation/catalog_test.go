package generation

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/models"
)

func TestScan(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/images/orbit-tracker/1.jpg": {Data: []byte("1")},
		"assets/images/orbit-tracker/2.jpg": {Data: []byte("2")},
		"assets/images/tiny_shell/1.jpg":    {Data: []byte("1")},
		"assets/images/no-cover/2.jpg":      {Data: []byte("2")},
		"assets/images/.cache/1.jpg":        {Data: []byte("1")},
		"assets/images/stray.jpg":           {Data: []byte("x")},
	}

	projects, err := Scan(fsys, DefaultImagesDir)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, models.Project{
		ID:       "orbit-tracker",
		Title:    "Orbit Tracker",
		Category: DefaultCategory,
		Images:   []string{"assets/images/orbit-tracker/1"},
	}, projects[0])
	assert.Equal(t, "Tiny Shell", projects[1].Title)

	_, err = Scan(fsys, "missing")
	assert.Error(t, err)
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "Orbit Tracker V2", TitleFromSlug("orbit-tracker_v2"))
	assert.Equal(t, "Compiler", TitleFromSlug("compiler"))
}

func TestCatalog_Merge(t *testing.T) {
	c, err := ReadCatalog(strings.NewReader(`[{"id": "b", "title": "Hand Written", "category": "Web"}]`))
	require.NoError(t, err)

	added, err := c.Merge([]models.Project{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
	})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, models.ProjectID("a"), added[0].ID)
	assert.Equal(t, 2, c.Len())

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	var list models.ProjectList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	require.Len(t, list.Projects, 2)
	assert.Equal(t, "Hand Written", list.Projects[0].Title, "existing entries win")
	assert.Equal(t, models.ProjectID("a"), list.Projects[1].ID)
}

func TestCatalog_KeepsExistingEntriesVerbatim(t *testing.T) {
	const doc = `[
  {"id": 7, "title": "Orbit", "category": "Web", "images": ["assets/images/orbit/1"],
   "year": 2023, "tech": {"Year": 2024, "Stack": "Go", "Live": true}}
]`
	c, err := ReadCatalog(strings.NewReader(doc))
	require.NoError(t, err)

	added, err := c.Merge([]models.Project{
		{ID: "7", Title: "Seven"},
		{ID: "shell", Title: "Shell", Category: DefaultCategory, Images: []string{"assets/images/shell/1"}},
	})
	require.NoError(t, err)
	require.Len(t, added, 1, "numeric 7 and scanned \"7\" are the same project")

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))

	var got []map[string]any
	dec := json.NewDecoder(bytes.NewReader(buf.Bytes()))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&got))
	require.Len(t, got, 2)

	assert.Equal(t, json.Number("7"), got[0]["id"])
	assert.Equal(t, json.Number("2023"), got[0]["year"])
	assert.Equal(t, map[string]any{"Year": json.Number("2024"), "Stack": "Go", "Live": true}, got[0]["tech"])
	assert.Equal(t, "shell", got[1]["id"])

	// tech rows keep their order
	assert.Less(t, strings.Index(buf.String(), `"Year"`), strings.Index(buf.String(), `"Live"`))
}

func TestCatalog_WrappedDocument(t *testing.T) {
	c, err := ReadCatalog(strings.NewReader(`{"site": "me", "projects": [{"id": "a"}], "updated": 1}`))
	require.NoError(t, err)
	_, err = c.Merge([]models.Project{{ID: "b", Title: "B"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	out := buf.String()
	assert.Less(t, strings.Index(out, `"site"`), strings.Index(out, `"projects"`))
	assert.Less(t, strings.Index(out, `"projects"`), strings.Index(out, `"updated"`))

	var list models.ProjectList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	assert.Len(t, list.Projects, 2)
}

func TestCatalog_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Catalog{}).Write(&buf))
	assert.Equal(t, "[]\n", buf.String())

	c, err := ReadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	_, err = c.Merge([]models.Project{{ID: "a", Title: "A", Images: []string{"x/1"}}})
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, c.Write(&buf))
	assert.NotContains(t, buf.String(), `"tech"`)
	assert.Contains(t, buf.String(), `"id": "a"`)
}

func TestReadCatalog_Malformed(t *testing.T) {
	_, err := ReadCatalog(strings.NewReader(`"nope"`))
	assert.Error(t, err)

	c, err := ReadCatalog(strings.NewReader(`[{"id": {}}]`))
	require.NoError(t, err)
	_, err = c.Merge(nil)
	assert.Error(t, err)
}
