package home

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/coralgallery/cmd/website/internal/display"
	"github.com/adampresley/coralgallery/cmd/website/internal/viewmodels"
	"github.com/adampresley/coralgallery/pkg/services"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	GalleryService services.GalleryServicer
	PageTitle      string
	Renderer       rendering.TemplateRenderer
}

type HomeController struct {
	galleryService services.GalleryServicer
	pageTitle      string
	renderer       rendering.TemplateRenderer
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		galleryService: config.GalleryService,
		pageTitle:      config.PageTitle,
		renderer:       config.Renderer,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	pageName := "pages/home"
	surface := display.NewPageSurface()

	c.galleryService.Render(r.Context(), surface)

	viewData := viewmodels.GalleryPage{
		BaseViewModel: viewmodels.BaseViewModel{
			Message:            "",
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		Title:    c.pageTitle,
		Sections: surface.Sections(),
	}

	if len(viewData.Sections) == 0 {
		slog.Warn("no categories configured")
		viewData.IsWarning = true
		viewData.Message = "There are no categories configured for this gallery."
	}

	c.renderer.Render(pageName, viewData, w)
}
