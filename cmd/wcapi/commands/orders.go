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

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
		Long:    "List, inspect, transition, and delete store orders",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersSetStatusCommand())
	cmd.AddCommand(newOrdersDeleteCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var (
		perPage int
		status  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := store.NewQueryParams().WithPerPage(perPage)
			if status != "" {
				params.WithFilter("status", status)
			}

			orders, err := client.Orders().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			return outputOrders(orders)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 10, "number of orders per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, processing, completed, ...)")

	return cmd
}

func outputOrders(orders *store.List[store.Order]) error {
	if done, err := renderStructured(orders); done || err != nil {
		return err
	}

	if len(orders.Items) == 0 {
		_, _ = os.Stdout.WriteString("No orders found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Status", "Total", "Currency", "Created")

	for _, order := range orders.Items {
		status := "-"
		if order.Status != nil {
			status = string(*order.Status)
		}

		created := "-"
		if order.DateCreated != nil {
			created = order.DateCreated.Format("2006-01-02")
		}

		_ = table.Append(strconv.FormatInt(order.ID, 10), status,
			strOrDash(order.Total), strOrDash(order.Currency), created)
	}

	_ = table.Render()

	return nil
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Show an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrInvalidOrderID
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			order, err := client.Orders().Get(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}

			return outputOrderDetails(order)
		},
	}
}

func outputOrderDetails(order *store.Order) error {
	if done, err := renderStructured(order); done || err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.FormatInt(order.ID, 10))

	if order.Status != nil {
		_ = table.Append("Status", string(*order.Status))
	}

	_ = table.Append("Total", strOrDash(order.Total))
	_ = table.Append("Currency", strOrDash(order.Currency))

	if order.CustomerID != nil {
		_ = table.Append("Customer", strconv.FormatInt(*order.CustomerID, 10))
	}

	if order.DateCreated != nil {
		_ = table.Append("Created", order.DateCreated.Format("2006-01-02 15:04:05"))
	}

	_ = table.Render()

	if len(order.LineItems) > 0 {
		_, _ = os.Stdout.WriteString("\nLine items:\n")

		items := tablewriter.NewWriter(os.Stdout)
		items.Header("Product", "Name", "Qty", "Total")

		for _, item := range order.LineItems {
			_ = items.Append(strconv.FormatInt(item.ProductID, 10), strOrDash(item.Name),
				strconv.Itoa(item.Quantity), strOrDash(item.Total))
		}

		_ = items.Render()
	}

	return nil
}

// Statuses an order can be transitioned to from the CLI.
var validOrderStatuses = map[string]store.OrderStatus{
	"pending":    store.OrderStatusPending,
	"processing": store.OrderStatusProcessing,
	"on-hold":    store.OrderStatusOnHold,
	"completed":  store.OrderStatusCompleted,
	"cancelled":  store.OrderStatusCancelled,
	"refunded":   store.OrderStatusRefunded,
	"failed":     store.OrderStatusFailed,
}

func newOrdersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ORDER_ID",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrInvalidOrderID
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.Orders().Delete(context.Background(), id, force)
			if err != nil {
				return fmt.Errorf("failed to delete order: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted order %d\n", deleted.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "bypass the trash and delete permanently")

	return cmd
}

func newOrdersSetStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status ORDER_ID STATUS",
		Short: "Transition an order to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrInvalidOrderID
			}

			status, ok := validOrderStatuses[args[1]]
			if !ok {
				return fmt.Errorf("%w: %s", ErrInvalidOrderStatus, args[1])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			updated, err := client.Orders().UpdateStatus(context.Background(), id, status)
			if err != nil {
				return fmt.Errorf("failed to update order status: %w", err)
			}

			newStatus := string(status)
			if updated.Status != nil {
				newStatus = string(*updated.Status)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Order %d is now '%s'\n", updated.ID, newStatus)

			return nil
		},
	}
}
