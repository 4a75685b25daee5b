package display

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	"image/jpeg"

	"github.com/adampresley/coralgallery/cmd/website/internal/models"
)

const (
	JpegQuality = 85
)

/*
PageSurface collects gallery output into page sections, in emission
order. Images are encoded as JPEG data URIs so the page needs no second
round trip to the file store. It is not safe for concurrent use; create
one per request.
*/
type PageSurface struct {
	sections []models.Section
}

func NewPageSurface() *PageSurface {
	return &PageSurface{
		sections: []models.Section{},
	}
}

func (s *PageSurface) Sections() []models.Section {
	return s.sections
}

func (s *PageSurface) Header(text string) {
	s.sections = append(s.sections, models.Section{
		Header:  text,
		Entries: []models.Entry{},
	})
}

func (s *PageSurface) Error(message string) {
	s.add(models.Entry{Kind: models.EntryError, Text: message})
}

func (s *PageSurface) Warning(message string) {
	s.add(models.Entry{Kind: models.EntryWarning, Text: message})
}

func (s *PageSurface) Link(text, url string) {
	s.add(models.Entry{Kind: models.EntryLink, Text: text, URL: url})
}

func (s *PageSurface) Image(caption string, img image.Image) error {
	var (
		err error
		buf bytes.Buffer
	)

	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JpegQuality}); err != nil {
		return fmt.Errorf("error encoding image for display: %w", err)
	}

	s.add(models.Entry{
		Kind:     models.EntryImage,
		Caption:  caption,
		ImageSrc: template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())),
	})

	return nil
}

/*
add appends to the current section. Output emitted before any header
gets a section without one.
*/
func (s *PageSurface) add(entry models.Entry) {
	if len(s.sections) == 0 {
		s.sections = append(s.sections, models.Section{Entries: []models.Entry{}})
	}

	last := &s.sections[len(s.sections)-1]
	last.Entries = append(last.Entries, entry)
}
