package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/storekit-io/wcapi/pkg/store"
)

// NewCouponsCommand creates the coupons command group.
func NewCouponsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "coupons",
		Aliases: []string{"coupon"},
		Short:   "Manage coupons",
		Long:    "List, inspect, and delete store coupons",
	}

	cmd.AddCommand(newCouponsListCommand())
	cmd.AddCommand(newCouponsGetCommand())
	cmd.AddCommand(newCouponsDeleteCommand())

	return cmd
}

func newCouponsListCommand() *cobra.Command {
	var (
		perPage int
		search  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List coupons",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := store.NewQueryParams().WithPerPage(perPage)
			if search != "" {
				params.WithSearch(search)
			}

			coupons, err := client.Coupons().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list coupons: %w", err)
			}

			return outputCoupons(coupons)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 10, "number of coupons per page")
	cmd.Flags().StringVar(&search, "search", "", "search string")

	return cmd
}

func outputCoupons(coupons *store.List[store.Coupon]) error {
	if done, err := renderStructured(coupons); done || err != nil {
		return err
	}

	if len(coupons.Items) == 0 {
		_, _ = os.Stdout.WriteString("No coupons found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Code", "Type", "Amount", "Used")

	for _, coupon := range coupons.Items {
		discountType := "-"
		if coupon.DiscountType != nil {
			discountType = string(*coupon.DiscountType)
		}

		used := "0"
		if coupon.UsageCount != nil {
			used = strconv.Itoa(*coupon.UsageCount)
		}

		_ = table.Append(strconv.FormatInt(coupon.ID, 10), coupon.Code,
			discountType, strOrDash(coupon.Amount), used)
	}

	_ = table.Render()

	return nil
}

func newCouponsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COUPON_ID",
		Short: "Show a coupon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrInvalidCouponID
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			coupon, err := client.Coupons().Get(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get coupon: %w", err)
			}

			if done, err := renderStructured(coupon); done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", strconv.FormatInt(coupon.ID, 10))
			_ = table.Append("Code", coupon.Code)
			_ = table.Append("Amount", strOrDash(coupon.Amount))

			if coupon.DiscountType != nil {
				_ = table.Append("Type", string(*coupon.DiscountType))
			}

			if coupon.DateExpires != nil {
				_ = table.Append("Expires", coupon.DateExpires.Format("2006-01-02"))
			}

			_ = table.Render()

			return nil
		},
	}
}

func newCouponsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete COUPON_ID",
		Short: "Delete a coupon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrInvalidCouponID
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.Coupons().Delete(context.Background(), id, force)
			if err != nil {
				return fmt.Errorf("failed to delete coupon: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted coupon '%s'\n", deleted.Code)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "bypass the trash and delete permanently")

	return cmd
}
