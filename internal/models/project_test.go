package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectID_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ProjectID
	}{
		{"string", `"orbit"`, "orbit"},
		{"integer", `42`, "42"},
		{"null", `null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ProjectID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id ProjectID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestTechTable_KeepsDocumentOrder(t *testing.T) {
	var p Project
	doc := `{"id": 7, "title": "Orbit", "category": "Web", "images": [],
		"tech": {"Zeta": "last-alpha", "Alpha": "first-alpha", "Year": 2024}}`
	require.NoError(t, json.Unmarshal([]byte(doc), &p))

	require.Len(t, p.Tech, 3)
	assert.Equal(t, "Zeta", p.Tech[0].Label)
	assert.Equal(t, "Alpha", p.Tech[1].Label)
	assert.Equal(t, TechEntry{Label: "Year", Value: "2024"}, p.Tech[2])

	v, ok := p.Tech.Get("Alpha")
	assert.True(t, ok)
	assert.Equal(t, "first-alpha", v)

	out, err := json.Marshal(p.Tech)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":"last-alpha","Alpha":"first-alpha","Year":"2024"}`, string(out))
}

func TestTechTable_Absent(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"id": "a", "title": "A", "category": "", "images": []}`), &p))
	assert.Empty(t, p.Tech)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "a", "tech": null}`), &p))
	assert.Nil(t, p.Tech)

	assert.Error(t, json.Unmarshal([]byte(`{"id": "a", "tech": ["x"]}`), &p))
}

func TestProject_CoverBase(t *testing.T) {
	p := Project{Images: []string{"assets/images/orbit/1", "ignored"}}
	assert.Equal(t, "assets/images/orbit/1", p.CoverBase())
	assert.Equal(t, "", (&Project{}).CoverBase())
}

func TestProjectList_Unmarshal(t *testing.T) {
	var bare ProjectList
	require.NoError(t, json.Unmarshal([]byte(`[{"id": 1, "title": "A"}]`), &bare))
	require.Len(t, bare.Projects, 1)
	assert.Equal(t, ProjectID("1"), bare.Projects[0].ID)

	var wrapped ProjectList
	require.NoError(t, json.Unmarshal([]byte(`{"projects": [{"id": "b"}, {"id": "c"}]}`), &wrapped))
	assert.Len(t, wrapped.Projects, 2)
}

func TestGalleryState_Current(t *testing.T) {
	g := GalleryState{Images: []string{"a.jpg", "b.jpg"}, Position: 1}
	assert.Equal(t, "b.jpg", g.Current())
	assert.Equal(t, "", GalleryState{}.Current())
}

func TestTechTable_EmptyObject(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"id": "a", "tech": {}}`), &p))
	assert.Empty(t, p.Tech)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "a", "tech": {"Stack": "Node"}}`), &p))
	assert.Equal(t, TechTable{{Label: "Stack", Value: "Node"}}, p.Tech)
}
