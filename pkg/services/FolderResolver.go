package services

import (
	"context"
	"strings"

	"github.com/adampresley/coralgallery/pkg/models"
)

type FolderResolverConfig struct {
	Indexer FileIndexer
}

/*
FolderResolver maps a human readable category name to a child folder of
a parent folder.
*/
type FolderResolver struct {
	indexer FileIndexer
}

func NewFolderResolver(config FolderResolverConfig) FolderResolver {
	return FolderResolver{
		indexer: config.Indexer,
	}
}

/*
ResolveSubfolder returns the first child folder of parentID whose name
matches targetName, ignoring case and surrounding whitespace. The bool
is false when nothing matches, which is not an error. When two folders
normalize to the same name the first one in remote order wins, and that
order is not guaranteed to be stable.
*/
func (r FolderResolver) ResolveSubfolder(ctx context.Context, parentID, targetName string) (models.Folder, bool, error) {
	var (
		err     error
		folders []models.Folder
	)

	if folders, err = r.indexer.ListChildFolders(ctx, parentID); err != nil {
		return models.Folder{}, false, err
	}

	target := normalizeName(targetName)

	for _, folder := range folders {
		if normalizeName(folder.Name) == target {
			return folder, true, nil
		}
	}

	return models.Folder{}, false, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
