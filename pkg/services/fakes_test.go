package services

import (
	"context"
	"fmt"
	"image"

	"github.com/adampresley/coralgallery/pkg/models"
)

type fakeIndexer struct {
	folders       map[string][]models.Folder
	files         map[string][]models.File
	foldersErr    error
	filesErr      map[string]error
	listedFiles   []string
	folderQueries int
}

func (f *fakeIndexer) ListChildFolders(ctx context.Context, parentID string) ([]models.Folder, error) {
	f.folderQueries++

	if f.foldersErr != nil {
		return nil, f.foldersErr
	}

	return f.folders[parentID], nil
}

func (f *fakeIndexer) ListChildImageFiles(ctx context.Context, folderID string) ([]models.File, error) {
	f.listedFiles = append(f.listedFiles, folderID)

	if err, ok := f.filesErr[folderID]; ok {
		return nil, err
	}

	return f.files[folderID], nil
}

func (f *fakeIndexer) ViewURL(file models.File) (string, error) {
	if file.ID == "" {
		return "", fmt.Errorf("file '%s' has no identifier", file.Name)
	}

	return "https://view.test/" + file.ID, nil
}

type fakeFetcher struct {
	failures map[string]error
	fetched  []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	f.fetched = append(f.fetched, url)

	if err, ok := f.failures[url]; ok {
		return nil, err
	}

	return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
}

/*
recordingSurface keeps every emission as "kind:text" in order.
*/
type recordingSurface struct {
	events      []string
	imageErrors map[string]error
}

func (s *recordingSurface) Header(text string)     { s.events = append(s.events, "header:"+text) }
func (s *recordingSurface) Error(message string)   { s.events = append(s.events, "error:"+message) }
func (s *recordingSurface) Warning(message string) { s.events = append(s.events, "warning:"+message) }
func (s *recordingSurface) Link(text, url string)  { s.events = append(s.events, "link:"+text+"|"+url) }

func (s *recordingSurface) Image(caption string, img image.Image) error {
	if err, ok := s.imageErrors[caption]; ok {
		return err
	}

	s.events = append(s.events, "image:"+caption)
	return nil
}

func (s *recordingSurface) count(kind string) int {
	n := 0

	for _, e := range s.events {
		if len(e) > len(kind) && e[:len(kind)+1] == kind+":" {
			n++
		}
	}

	return n
}
