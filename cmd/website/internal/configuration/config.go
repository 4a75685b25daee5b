package configuration

import (
	"strings"

	"github.com/adampresley/configinator"
)

type Config struct {
	AwsEndpointUrl        string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL (s3 backend)"`
	AwsRegion             string `flag:"awsregion" env:"AWS_REGION" default:"us-central-1" description:"AWS region (s3 backend)"`
	AwsAccessKeyId        string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID (s3 backend)"`
	AwsSecretAccessKey    string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key (s3 backend)"`
	AwsBucket             string `flag:"awsbucket" env:"AWS_BUCKET" default:"coral-gallery" description:"S3 bucket (s3 backend)"`
	Categories            string `flag:"categories" env:"CATEGORIES" default:"Black Band Disease,White Band Disease" description:"Comma separated category folder names, displayed in this order"`
	GoogleCredentials     string `flag:"googlecredentials" env:"GOOGLE_CREDENTIALS" default:"" description:"Google service account JSON"`
	GoogleCredentialsFile string `flag:"googlecredentialsfile" env:"GOOGLE_CREDENTIALS_FILE" default:"" description:"Path to a Google service account JSON file, used when GOOGLE_CREDENTIALS is empty"`
	Host                  string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	HttpWriteTimeout      int    `flag:"httpwritetimeout" env:"HTTP_WRITE_TIMEOUT" default:"300" description:"HTTP write timeout in seconds. The gallery page fetches every image before responding"`
	ImageFetchTimeout     int    `flag:"imagefetchtimeout" env:"IMAGE_FETCH_TIMEOUT" default:"60" description:"Timeout in seconds for fetching a single image. 0 disables the timeout"`
	LogLevel              string `flag:"loglevel" env:"LOG_LEVEL" default:"info" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxDisplayWidth       int    `flag:"maxdisplaywidth" env:"MAX_DISPLAY_WIDTH" default:"1200" description:"Images wider than this many pixels are scaled down. 0 keeps the original size"`
	MaxImageBytes         int    `flag:"maximagebytes" env:"MAX_IMAGE_BYTES" default:"26214400" description:"Largest image download in bytes. 0 disables the limit"`
	MaxListPages          int    `flag:"maxlistpages" env:"MAX_LIST_PAGES" default:"1" description:"Listing pages of 100 entries to read per folder. 0 reads every page"`
	PageTitle             string `flag:"pagetitle" env:"PAGE_TITLE" default:"Coral Disease Image Gallery" description:"Title shown at the top of the gallery"`
	ParentFolderID        string `flag:"parentfolderid" env:"PARENT_FOLDER_ID" default:"1Tj9RBvhpK_0VBPaFLlUr5kVyc7a2Xzqo" description:"Identifier of the folder holding the category folders (a key prefix for the s3 backend)"`
	StorageBackend        string `flag:"storagebackend" env:"STORAGE_BACKEND" default:"drive" description:"File store to read from. Valid values are 'drive' and 's3'"`
	ViewHost              string `flag:"viewhost" env:"VIEW_HOST" default:"drive.google.com" description:"Host used to build public image view URLs"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

/*
CategoryList splits Categories on commas, keeping order and dropping
blank entries.
*/
func (c Config) CategoryList() []string {
	result := []string{}

	for _, category := range strings.Split(c.Categories, ",") {
		category = strings.TrimSpace(category)

		if category != "" {
			result = append(result, category)
		}
	}

	return result
}
