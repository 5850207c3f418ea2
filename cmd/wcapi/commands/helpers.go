package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/storekit-io/wcapi/internal/auth"
	"github.com/storekit-io/wcapi/internal/constants"
	"github.com/storekit-io/wcapi/pkg/store"
	"github.com/storekit-io/wcapi/pkg/storeclient"
)

// Common static errors used throughout the commands package.
var (
	ErrEndpointNotConfigured = errors.New("no endpoint configured (use 'wcapi login', --endpoint, or WCAPI_ENDPOINT)")
	ErrInvalidProductID      = errors.New("product ID must be an integer")
	ErrInvalidCategoryID     = errors.New("category ID must be an integer")
	ErrInvalidOrderID        = errors.New("order ID must be an integer")
	ErrInvalidCouponID       = errors.New("coupon ID must be an integer")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
)

// CreateClient builds a store client from flags, environment, config file,
// and saved credentials, in that precedence order.
func CreateClient() (store.Client, error) {
	config := &store.Config{
		Endpoint:       viper.GetString("endpoint"),
		ConsumerKey:    viper.GetString("consumer_key"),
		ConsumerSecret: viper.GetString("consumer_secret"),
		Faking:         viper.GetBool("faking"),
	}

	if config.Endpoint == "" && !config.Faking {
		fileStore, err := auth.NewFileStore("")
		if err == nil {
			endpoint, key, secret, _, loadErr := fileStore.Load()
			if loadErr == nil {
				config.Endpoint = endpoint
				config.ConsumerKey = key
				config.ConsumerSecret = secret
			}
		}
	}

	if config.Faking && config.Endpoint == "" {
		config.Endpoint = "https://faked.invalid"
	}

	if config.Endpoint == "" {
		return nil, ErrEndpointNotConfigured
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewCLILogger()
	}

	client, err := storeclient.New(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// NewCLILogger returns a structured logger writing to stderr.
func NewCLILogger() store.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.DebugLevel)

	return &logrusAdapter{log: log}
}

// logrusAdapter adapts logrus to store.Logger.
type logrusAdapter struct {
	log *logrus.Logger
}

func (l *logrusAdapter) Debug(msg string, fields map[string]any) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *logrusAdapter) Info(msg string, fields map[string]any) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *logrusAdapter) Warn(msg string, fields map[string]any) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *logrusAdapter) Error(msg string, fields map[string]any) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}

// renderStructured writes v as JSON or YAML when the output flag asks for a
// structured format. The boolean reports whether output was produced; table
// rendering stays with the caller.
func renderStructured(v any) (bool, error) {
	output := viper.GetString("output")

	switch output {
	case constants.FormatJSON:
		return true, renderJSON(v)
	case constants.FormatYAML:
		return true, renderYAML(v)
	case "", constants.FormatTable:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", store.ErrInvalidOutputFormat, output)
	}
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// strOrDash dereferences an optional string for table cells.
func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}

	return *s
}
