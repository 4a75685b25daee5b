package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	ErrMissingCredential   = fmt.Errorf("google cloud credentials not found")
	ErrMalformedCredential = fmt.Errorf("google cloud credentials are malformed")
)

/*
Credential is the authorization handle for the remote file store. It is
built once at startup and handed to the clients that need it.
*/
type Credential struct {
	ClientEmail string
	ProjectID   string

	google *google.Credentials
}

type serviceAccountInfo struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

/*
Load reads the service account secret either from the inline JSON blob
or, when that is empty, from the file at path.
*/
func Load(ctx context.Context, blob, path string) (*Credential, error) {
	var (
		err    error
		secret []byte
	)

	secret = []byte(strings.TrimSpace(blob))

	if len(secret) == 0 && path != "" {
		if secret, err = os.ReadFile(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: file '%s' does not exist", ErrMissingCredential, path)
			}

			return nil, fmt.Errorf("error reading credentials file '%s': %w", path, err)
		}
	}

	return Parse(ctx, secret)
}

/*
Parse validates a service account JSON secret and builds a read-only
Drive credential from it.
*/
func Parse(ctx context.Context, secret []byte) (*Credential, error) {
	var (
		err   error
		info  serviceAccountInfo
		creds *google.Credentials
	)

	if len(strings.TrimSpace(string(secret))) == 0 {
		return nil, ErrMissingCredential
	}

	if err = json.Unmarshal(secret, &info); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedCredential, err)
	}

	missing := []string{}

	if info.ClientEmail == "" {
		missing = append(missing, "client_email")
	}

	if info.PrivateKey == "" {
		missing = append(missing, "private_key")
	}

	if info.TokenURI == "" {
		missing = append(missing, "token_uri")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedCredential, strings.Join(missing, ", "))
	}

	if info.Type != "service_account" {
		return nil, fmt.Errorf("%w: expected type 'service_account', got '%s'", ErrMalformedCredential, info.Type)
	}

	if creds, err = google.CredentialsFromJSON(ctx, secret, drive.DriveReadonlyScope); err != nil {
		return nil, fmt.Errorf("error authenticating with Google Drive: %w", err)
	}

	return &Credential{
		ClientEmail: info.ClientEmail,
		ProjectID:   info.ProjectID,
		google:      creds,
	}, nil
}

/*
ClientOption authorizes a Google API client with this credential.
*/
func (c *Credential) ClientOption() option.ClientOption {
	return option.WithCredentials(c.google)
}
