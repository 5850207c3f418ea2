package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show store system status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			status, err := client.SystemStatus(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get system status: %w", err)
			}

			if done, err := renderStructured(status); done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Site", status.Environment.SiteURL)
			_ = table.Append("Version", status.Environment.Version)
			_ = table.Append("API root", status.Environment.RESTAPIURL)
			_ = table.Append("Currency", status.Settings.Currency)
			_ = table.Append("Taxes enabled", strconv.FormatBool(status.Settings.TaxesEnabled))
			_ = table.Render()

			return nil
		},
	}
}
