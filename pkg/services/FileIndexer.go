package services

import (
	"context"
	"fmt"

	"github.com/adampresley/coralgallery/pkg/models"
)

const (
	/*
	 * ListPageSize is the number of entries requested per listing call.
	 */
	ListPageSize = 100
)

/*
FileIndexer issues the two query shapes the gallery needs against a
remote hierarchical file store, and knows how to build a public view
URL for a listed file.
*/
type FileIndexer interface {
	ListChildFolders(ctx context.Context, parentID string) ([]models.Folder, error)
	ListChildImageFiles(ctx context.Context, folderID string) ([]models.File, error)
	ViewURL(file models.File) (string, error)
}

/*
RemoteQueryError is returned when a listing call to the remote store
fails, either in transport or while parsing the response.
*/
type RemoteQueryError struct {
	Op       string
	ParentID string
	Err      error
}

func (e *RemoteQueryError) Error() string {
	return fmt.Sprintf("error running remote query '%s' for parent '%s': %s", e.Op, e.ParentID, e.Err)
}

func (e *RemoteQueryError) Unwrap() error {
	return e.Err
}
