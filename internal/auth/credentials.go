// Package auth manages API credentials for the store client.
package auth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/storekit-io/wcapi/internal/constants"
)

// Provider supplies the consumer key pair used to authenticate requests.
// Implementations must be safe for concurrent use.
type Provider interface {
	Credentials(ctx context.Context) (key, secret string, err error)
}

// StaticProvider returns a fixed key pair.
type StaticProvider struct {
	Key    string
	Secret string
}

// NewStaticProvider creates a provider around a fixed key pair.
func NewStaticProvider(key, secret string) *StaticProvider {
	return &StaticProvider{Key: key, Secret: secret}
}

// Credentials returns the stored key pair.
func (p *StaticProvider) Credentials(ctx context.Context) (string, string, error) {
	return p.Key, p.Secret, nil
}

// storedCredentials is the on-disk credential file shape.
type storedCredentials struct {
	Endpoint       string `yaml:"endpoint"`
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
	UserID         string `yaml:"user_id,omitempty"`
}

// FileStore persists credentials under the user config directory so CLI
// sessions survive process restarts. Files are written with restrictive
// permissions.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. Empty dir means the default
// location under the user's home directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}

		dir = filepath.Join(home, ".wcapi")
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, "credentials.yaml")
}

// Save writes the credentials for an endpoint.
func (s *FileStore) Save(endpoint, key, secret, userID string) error {
	err := os.MkdirAll(s.dir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(&storedCredentials{
		Endpoint:       endpoint,
		ConsumerKey:    key,
		ConsumerSecret: secret,
		UserID:         userID,
	})
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	err = os.WriteFile(s.path(), data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}

	return nil
}

// Load reads the saved credentials. Returns os.ErrNotExist wrapped when no
// credentials were saved.
func (s *FileStore) Load() (endpoint, key, secret, userID string, err error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return "", "", "", "", fmt.Errorf("reading credentials file: %w", err)
	}

	var creds storedCredentials

	err = yaml.Unmarshal(data, &creds)
	if err != nil {
		return "", "", "", "", fmt.Errorf("decoding credentials file: %w", err)
	}

	return creds.Endpoint, creds.ConsumerKey, creds.ConsumerSecret, creds.UserID, nil
}

// Clear removes the saved credentials. Missing files are not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing credentials file: %w", err)
	}

	return nil
}
