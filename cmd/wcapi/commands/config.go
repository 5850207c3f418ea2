package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/storekit-io/wcapi/pkg/store"
)

// Keys the config command will show and set.
var configKeys = []string{"endpoint", "consumer_key", "output", "faking"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and set persistent CLI configuration values",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value")

			keys := make([]string, len(configKeys))
			copy(keys, configKeys)
			sort.Strings(keys)

			for _, key := range keys {
				value := viper.GetString(key)
				if value == "" {
					value = "-"
				}

				_ = table.Append(key, value)
			}

			_ = table.Render()

			if file := viper.ConfigFileUsed(); file != "" {
				_, _ = fmt.Fprintf(os.Stdout, "\nConfig file: %s\n", file)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			known := false

			for _, candidate := range configKeys {
				if candidate == key {
					known = true

					break
				}
			}

			if !known {
				return fmt.Errorf("%w: %s", store.ErrUnknownConfigKey, key)
			}

			viper.Set(key, value)

			err := viper.WriteConfig()
			if err != nil {
				err = viper.SafeWriteConfig()
			}

			if err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", key)

			return nil
		},
	}
}
