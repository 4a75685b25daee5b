package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/adampresley/coralgallery/pkg/metrics"
	"github.com/adampresley/coralgallery/pkg/models"
)

type GalleryServicer interface {
	Render(ctx context.Context, surface DisplaySurface)
}

type GalleryServiceConfig struct {
	Categories     []string
	FolderResolver FolderResolver
	ImageFetcher   ImageFetcher
	Indexer        FileIndexer
	ParentFolderID string
}

/*
GalleryService walks every configured category, one at a time, and emits
its images to a display surface.
*/
type GalleryService struct {
	categories     []string
	folderResolver FolderResolver
	imageFetcher   ImageFetcher
	indexer        FileIndexer
	parentFolderID string
}

func NewGalleryService(config GalleryServiceConfig) GalleryService {
	return GalleryService{
		categories:     config.Categories,
		folderResolver: config.FolderResolver,
		imageFetcher:   config.ImageFetcher,
		indexer:        config.Indexer,
		parentFolderID: config.ParentFolderID,
	}
}

/*
Render emits a header for each category followed by either a single
error or warning, or a link and an image per file. A failing image only
produces a warning; the remaining images are still rendered.
*/
func (s GalleryService) Render(ctx context.Context, surface DisplaySurface) {
	start := time.Now()

	for _, category := range s.categories {
		surface.Header(category)
		outcome := s.renderCategory(ctx, category, surface)
		metrics.RecordCategoryOutcome(category, outcome)
	}

	metrics.ObserveRenderDuration(time.Since(start).Seconds())
}

func (s GalleryService) renderCategory(ctx context.Context, category string, surface DisplaySurface) string {
	var (
		err    error
		folder models.Folder
		found  bool
		files  []models.File
	)

	l := slog.With("category", category, "parentFolderID", s.parentFolderID)

	if folder, found, err = s.folderResolver.ResolveSubfolder(ctx, s.parentFolderID, category); err != nil {
		l.Error("error resolving category folder", "error", err)
		surface.Error(queryErrorMessage(category, err))
		return metrics.OutcomeQueryError
	}

	if !found {
		l.Info("category folder not found")
		surface.Error(fmt.Sprintf("Folder '%s' not found.", category))
		return metrics.OutcomeNotFound
	}

	if files, err = s.indexer.ListChildImageFiles(ctx, folder.ID); err != nil {
		l.Error("error listing category images", "folderID", folder.ID, "error", err)
		surface.Error(queryErrorMessage(category, err))
		return metrics.OutcomeQueryError
	}

	if len(files) == 0 {
		surface.Warning(fmt.Sprintf("No images found in '%s' folder.", category))
		return metrics.OutcomeEmpty
	}

	l.Debug("rendering category", "folderID", folder.ID, "numImages", len(files))

	for _, file := range files {
		if err = s.renderImage(ctx, file, surface); err != nil {
			l.Warn("could not load image", "fileID", file.ID, "fileName", file.Name, "error", err)
			surface.Warning(fmt.Sprintf("Could not load image: %s - %s", file.Name, err))
			metrics.RecordImageFailure(category)
			continue
		}

		metrics.RecordImageRendered(category)
	}

	return metrics.OutcomeRendered
}

func (s GalleryService) renderImage(ctx context.Context, file models.File, surface DisplaySurface) error {
	var (
		err     error
		viewURL string
		img     image.Image
	)

	if viewURL, err = s.indexer.ViewURL(file); err != nil {
		return err
	}

	surface.Link(file.Name, viewURL)

	if img, err = s.imageFetcher.Fetch(ctx, viewURL); err != nil {
		return err
	}

	return surface.Image(file.Name, img)
}

func queryErrorMessage(category string, err error) string {
	var queryErr *RemoteQueryError

	if errors.As(err, &queryErr) {
		return fmt.Sprintf("Could not query the file store for '%s': %s", category, queryErr.Err)
	}

	return fmt.Sprintf("Could not load '%s': %s", category, err)
}
