package main

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/coralgallery/cmd/website/internal/configuration"
	"github.com/adampresley/coralgallery/cmd/website/internal/home"
	"github.com/adampresley/coralgallery/pkg/credentials"
	"github.com/adampresley/coralgallery/pkg/metrics"
	"github.com/adampresley/coralgallery/pkg/services"
	"google.golang.org/api/drive/v3"
)

var (
	Version string = "development"
	appName string = "coralgallery"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	galleryService services.GalleryService
	indexer        services.FileIndexer
	renderer       rendering.TemplateRenderer

	/* Controllers */
	homeController home.HomeHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("storageBackend", config.StorageBackend),
		slog.String("parentFolderID", config.ParentFolderID),
		slog.Any("categories", config.CategoryList()),
	)

	slog.Debug("setting up...")

	/*
	 * Setup services
	 */
	switch config.StorageBackend {
	case "drive":
		indexer = setupDriveIndexer()

	case "s3":
		indexer = setupS3Indexer()

	default:
		slog.Error("unknown storage backend. valid values are 'drive' and 's3'", "storageBackend", config.StorageBackend)
		os.Exit(1)
	}

	imageFetchService := services.NewImageFetchService(services.ImageFetchServiceConfig{
		HTTPClient: &http.Client{
			Timeout: time.Duration(config.ImageFetchTimeout) * time.Second,
		},
		MaxDisplayWidth: uint(max(config.MaxDisplayWidth, 0)),
		MaxImageBytes:   int64(config.MaxImageBytes),
	})

	galleryService = services.NewGalleryService(services.GalleryServiceConfig{
		Categories: config.CategoryList(),
		FolderResolver: services.NewFolderResolver(services.FolderResolverConfig{
			Indexer: indexer,
		}),
		ImageFetcher:   imageFetchService,
		Indexer:        indexer,
		ParentFolderID: config.ParentFolderID,
	})

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		GalleryService: galleryService,
		PageTitle:      config.PageTitle,
		Renderer:       renderer,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	/*
	 * Every route goes through request logging. Health checks and
	 * metric scrapes are too frequent to log.
	 */
	requestLoggingMiddleware := newRequestLoggingMiddleware(
		[]string{
			"/heartbeat",
			"/metrics",
		},
	)

	middlewares := []mux.MiddlewareFunc{requestLoggingMiddleware}

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat, Middlewares: middlewares},
		{Path: "GET /metrics", HandlerFunc: metrics.Handler().ServeHTTP, Middlewares: middlewares},
		{Path: "GET /", HandlerFunc: homeController.HomePage, Middlewares: middlewares},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     config.HttpWriteTimeout,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

/*
setupDriveIndexer loads the service account credential once and builds
the Drive backed index with it. A missing or malformed credential stops
the process.
*/
func setupDriveIndexer() services.FileIndexer {
	var (
		err        error
		credential *credentials.Credential
		driveAPI   *drive.Service
	)

	ctx := context.Background()

	if credential, err = credentials.Load(ctx, config.GoogleCredentials, config.GoogleCredentialsFile); err != nil {
		switch {
		case errors.Is(err, credentials.ErrMissingCredential):
			slog.Error("Google Cloud credentials not found. Set GOOGLE_CREDENTIALS to the contents of your service account JSON file, or GOOGLE_CREDENTIALS_FILE to its path.", "error", err)

		case errors.Is(err, credentials.ErrMalformedCredential):
			slog.Error("error decoding Google Cloud credentials JSON. Please check the format of your GOOGLE_CREDENTIALS secret.", "error", err)

		default:
			slog.Error("an unexpected error occurred during Google Drive authentication", "error", err)
		}

		os.Exit(1)
	}

	slog.Info("google drive credential loaded", "clientEmail", credential.ClientEmail, "projectID", credential.ProjectID)

	if driveAPI, err = services.NewDriveAPI(ctx, credential); err != nil {
		slog.Error("an unexpected error occurred during Google Drive authentication", "error", err)
		os.Exit(1)
	}

	return services.NewDriveService(services.DriveServiceConfig{
		DriveAPI:     driveAPI,
		MaxListPages: config.MaxListPages,
		ViewHost:     config.ViewHost,
	})
}

func setupS3Indexer() services.FileIndexer {
	var (
		err error
	)

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	s3Client, err := s3.NewClient(awsConfig)

	if err != nil {
		panic(err)
	}

	return services.NewS3FileIndex(services.S3FileIndexConfig{
		Bucket:       config.AwsBucket,
		MaxListPages: config.MaxListPages,
		S3Client:     s3Client,
	})
}
