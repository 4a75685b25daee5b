package display

import (
	"image"
	"strings"
	"testing"

	"github.com/adampresley/coralgallery/cmd/website/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSurface_GroupsEntriesUnderHeaders(t *testing.T) {
	s := NewPageSurface()

	s.Header("Black Band Disease")
	s.Link("coral.jpg", "https://drive.google.com/uc?export=view&id=1")
	require.NoError(t, s.Image("coral.jpg", image.NewRGBA(image.Rect(0, 0, 4, 4))))
	s.Warning("Could not load image: bad.jpg - boom")
	s.Header("White Band Disease")
	s.Error("Folder 'White Band Disease' not found.")

	sections := s.Sections()
	require.Len(t, sections, 2)

	assert.Equal(t, "Black Band Disease", sections[0].Header)
	require.Len(t, sections[0].Entries, 3)
	assert.True(t, sections[0].Entries[0].IsLink())
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=1", sections[0].Entries[0].URL)
	assert.True(t, sections[0].Entries[1].IsImage())
	assert.Equal(t, "coral.jpg", sections[0].Entries[1].Caption)
	assert.True(t, strings.HasPrefix(string(sections[0].Entries[1].ImageSrc), "data:image/jpeg;base64,"))
	assert.True(t, sections[0].Entries[2].IsWarning())

	assert.Equal(t, "White Band Disease", sections[1].Header)
	assert.Equal(t, []models.Entry{
		{Kind: models.EntryError, Text: "Folder 'White Band Disease' not found."},
	}, sections[1].Entries)
}

func TestPageSurface_EntryBeforeHeader(t *testing.T) {
	s := NewPageSurface()
	s.Warning("early")

	sections := s.Sections()
	require.Len(t, sections, 1)
	assert.Equal(t, "", sections[0].Header)
	assert.Equal(t, "early", sections[0].Entries[0].Text)
}

func TestPageSurface_ImageEncodeFailure(t *testing.T) {
	s := NewPageSurface()
	s.Header("A")

	// JPEG cannot encode a side of 65536 pixels or more
	err := s.Image("wide.jpg", image.NewGray(image.Rect(0, 0, 1<<16, 1)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error encoding image for display")
	assert.Empty(t, s.Sections()[0].Entries)
}
