package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/adampresley/coralgallery/pkg/credentials"
	"github.com/adampresley/coralgallery/pkg/models"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	DriveFolderMimeType = "application/vnd.google-apps.folder"
	DefaultViewHost     = "drive.google.com"
)

var queryValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

type DriveServiceConfig struct {
	DriveAPI *drive.Service

	/*
	 * MaxListPages caps how many result pages a listing reads. 1 reads only
	 * the first page of ListPageSize entries, 0 follows page tokens until
	 * the listing is exhausted.
	 */
	MaxListPages int
	ViewHost     string
}

/*
DriveService is a FileIndexer backed by the Google Drive v3 API.
*/
type DriveService struct {
	driveAPI     *drive.Service
	maxListPages int
	viewHost     string
}

/*
NewDriveAPI builds a Drive API client authorized by the given credential.
*/
func NewDriveAPI(ctx context.Context, credential *credentials.Credential, opts ...option.ClientOption) (*drive.Service, error) {
	var (
		err     error
		service *drive.Service
	)

	opts = append([]option.ClientOption{credential.ClientOption()}, opts...)

	if service, err = drive.NewService(ctx, opts...); err != nil {
		return nil, fmt.Errorf("error creating Google Drive client: %w", err)
	}

	return service, nil
}

func NewDriveService(config DriveServiceConfig) DriveService {
	if config.ViewHost == "" {
		config.ViewHost = DefaultViewHost
	}

	if config.MaxListPages < 0 {
		config.MaxListPages = 1
	}

	return DriveService{
		driveAPI:     config.DriveAPI,
		maxListPages: config.MaxListPages,
		viewHost:     config.ViewHost,
	}
}

func (s DriveService) ListChildFolders(ctx context.Context, parentID string) ([]models.Folder, error) {
	var (
		err   error
		files []*drive.File
	)

	query := fmt.Sprintf(
		"'%s' in parents and mimeType = '%s' and trashed = false",
		queryValueEscaper.Replace(parentID),
		DriveFolderMimeType,
	)

	if files, err = s.list(ctx, "listChildFolders", parentID, query); err != nil {
		return nil, err
	}

	result := make([]models.Folder, 0, len(files))

	for _, f := range files {
		result = append(result, models.Folder{
			ID:   f.Id,
			Name: f.Name,
		})
	}

	return result, nil
}

func (s DriveService) ListChildImageFiles(ctx context.Context, folderID string) ([]models.File, error) {
	var (
		err   error
		files []*drive.File
	)

	query := fmt.Sprintf(
		"'%s' in parents and mimeType contains 'image/' and trashed = false",
		queryValueEscaper.Replace(folderID),
	)

	if files, err = s.list(ctx, "listChildImageFiles", folderID, query); err != nil {
		return nil, err
	}

	result := make([]models.File, 0, len(files))

	for _, f := range files {
		/*
		 * Drive can only match "contains" on MIME types, so the prefix
		 * check happens here.
		 */
		if !strings.HasPrefix(f.MimeType, "image/") {
			continue
		}

		result = append(result, models.File{
			ID:   f.Id,
			Name: f.Name,
		})
	}

	return result, nil
}

func (s DriveService) ViewURL(file models.File) (string, error) {
	if file.ID == "" {
		return "", fmt.Errorf("file '%s' has no identifier", file.Name)
	}

	return fmt.Sprintf("https://%s/uc?export=view&id=%s", s.viewHost, url.QueryEscape(file.ID)), nil
}

func (s DriveService) list(ctx context.Context, op, parentID, query string) ([]*drive.File, error) {
	var (
		err       error
		response  *drive.FileList
		pageToken string
	)

	result := []*drive.File{}

	for page := 1; ; page++ {
		call := s.driveAPI.Files.List().
			Q(query).
			PageSize(ListPageSize).
			Fields("nextPageToken, files(id, name, mimeType)").
			Context(ctx)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		if response, err = call.Do(); err != nil {
			return nil, &RemoteQueryError{Op: op, ParentID: parentID, Err: err}
		}

		result = append(result, response.Files...)
		pageToken = response.NextPageToken

		if pageToken == "" {
			break
		}

		if s.maxListPages > 0 && page >= s.maxListPages {
			slog.Debug("listing has more results than the page limit allows", "op", op, "parentID", parentID, "pages", page)
			break
		}
	}

	return result, nil
}
