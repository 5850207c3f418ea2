package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/storekit-io/wcapi/internal/auth"
	"github.com/storekit-io/wcapi/internal/constants"
	"github.com/storekit-io/wcapi/pkg/store"
	"github.com/storekit-io/wcapi/pkg/storeclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		endpoint       string
		consumerKey    string
		consumerSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save store credentials",
		Long: `Verify a consumer key pair against the store and save it for later commands.

The secret is prompted without echo when not given as a flag.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if endpoint == "" {
				fmt.Print("Store endpoint: ")

				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read endpoint: %w", err)
				}

				endpoint = strings.TrimSpace(line)
			}

			if consumerKey == "" {
				fmt.Print("Consumer key: ")

				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read consumer key: %w", err)
				}

				consumerKey = strings.TrimSpace(line)
			}

			if consumerSecret == "" {
				fmt.Print("Consumer secret: ")

				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read consumer secret: %w", err)
				}

				consumerSecret = string(byteSecret)

				fmt.Println()
			}

			client, err := storeclient.New(context.Background(), &store.Config{
				Endpoint:       endpoint,
				ConsumerKey:    consumerKey,
				ConsumerSecret: consumerSecret,
			})
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}

			verifyCtx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
			defer cancel()

			status, err := client.SystemStatus(verifyCtx)
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			fileStore, err := auth.NewFileStore("")
			if err != nil {
				return fmt.Errorf("opening credential store: %w", err)
			}

			err = fileStore.Save(endpoint, consumerKey, consumerSecret, "")
			if err != nil {
				return fmt.Errorf("saving credentials: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Logged in to %s (store version %s)\n",
				endpoint, status.Environment.Version)

			return nil
		},
	}

	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "store endpoint URL")
	cmd.Flags().StringVar(&consumerKey, "consumer-key", "", "API consumer key")
	cmd.Flags().StringVar(&consumerSecret, "consumer-secret", "", "API consumer secret")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove saved store credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileStore, err := auth.NewFileStore("")
			if err != nil {
				return fmt.Errorf("opening credential store: %w", err)
			}

			if _, _, _, _, err := fileStore.Load(); errors.Is(err, os.ErrNotExist) {
				return store.ErrNotLoggedIn
			}

			err = fileStore.Clear()
			if err != nil {
				return fmt.Errorf("removing credentials: %w", err)
			}

			_, _ = os.Stdout.WriteString("Logged out\n")

			return nil
		},
	}
}
