package viewmodels

import "github.com/adampresley/coralgallery/cmd/website/internal/models"

type GalleryPage struct {
	BaseViewModel

	Title    string
	Sections []models.Section
}
