package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/coralgallery/pkg/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

type S3FileIndexConfig struct {
	Bucket       string
	MaxListPages int
	S3Client     s3.S3Client
}

/*
S3FileIndex is a FileIndexer over an S3 bucket. Folder identifiers are
key prefixes, and file identifiers are object keys.
*/
type S3FileIndex struct {
	bucket       string
	maxListPages int
	s3Client     s3.S3Client
}

func NewS3FileIndex(config S3FileIndexConfig) S3FileIndex {
	if config.MaxListPages < 0 {
		config.MaxListPages = 1
	}

	return S3FileIndex{
		bucket:       config.Bucket,
		maxListPages: config.MaxListPages,
		s3Client:     config.S3Client,
	}
}

func (s S3FileIndex) ListChildFolders(ctx context.Context, parentID string) ([]models.Folder, error) {
	var (
		err      error
		response s3.ListResponse
	)

	prefix := folderPrefix(parentID)

	if response, err = s.s3Client.List(s.bucket, prefix, listoptions.WithGetAll()); err != nil {
		return nil, &RemoteQueryError{Op: "listChildFolders", ParentID: parentID, Err: err}
	}

	return childFolders(prefix, objectKeys(response.Objects)), nil
}

func (s S3FileIndex) ListChildImageFiles(ctx context.Context, folderID string) ([]models.File, error) {
	var (
		err      error
		response s3.ListResponse
	)

	prefix := folderPrefix(folderID)

	response, err = s.s3Client.List(
		s.bucket,
		prefix,
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			return isImageKey(aws.ToString(obj.Key))
		}),
	)

	if err != nil {
		return nil, &RemoteQueryError{Op: "listChildImageFiles", ParentID: folderID, Err: err}
	}

	limit := 0

	if s.maxListPages > 0 {
		limit = s.maxListPages * ListPageSize
	}

	return directImageFiles(prefix, objectKeys(response.Objects), limit), nil
}

func (s S3FileIndex) ViewURL(file models.File) (string, error) {
	var (
		err error
		u   string
	)

	if u, err = s.s3Client.GetUrl(s.bucket, file.ID); err != nil {
		return "", fmt.Errorf("error getting view URL for '%s': %w", file.ID, err)
	}

	return u, nil
}

func folderPrefix(id string) string {
	id = strings.TrimPrefix(id, "/")

	if id == "" {
		return ""
	}

	return strings.TrimSuffix(id, "/") + "/"
}

func objectKeys(objects []s3.Object) []string {
	return slices.Map(objects, func(input s3.Object, index int) string {
		return input.Key
	})
}

/*
childFolders returns the distinct next path segments below prefix, in the
order they first appear.
*/
func childFolders(prefix string, keys []string) []models.Folder {
	seen := map[string]struct{}{}
	result := []models.Folder{}

	for _, key := range keys {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}

		name, _, isNested := strings.Cut(rest, "/")
		if !isNested || name == "" {
			continue
		}

		if _, ok = seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		result = append(result, models.Folder{
			ID:   prefix + name + "/",
			Name: name,
		})
	}

	return result
}

/*
directImageFiles returns image keys that sit directly under prefix. A
limit of 0 means no limit.
*/
func directImageFiles(prefix string, keys []string, limit int) []models.File {
	result := []models.File{}

	for _, key := range keys {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok || rest == "" || strings.Contains(rest, "/") {
			continue
		}

		if !isImageKey(key) {
			continue
		}

		result = append(result, models.File{
			ID:   key,
			Name: rest,
		})

		if limit > 0 && len(result) >= limit {
			break
		}
	}

	return result
}

func isImageKey(key string) bool {
	ext := strings.ToLower(path.Ext(key))
	return slices.IsInSlice(ext, imageExtensions)
}
