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

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Manage product categories",
		Long:    "List, inspect, create, and delete product categories",
	}

	cmd.AddCommand(newCategoriesListCommand())
	cmd.AddCommand(newCategoriesGetCommand())
	cmd.AddCommand(newCategoriesCreateCommand())
	cmd.AddCommand(newCategoriesDeleteCommand())

	return cmd
}

func newCategoriesListCommand() *cobra.Command {
	var (
		perPage int
		orderBy string
		order   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := store.NewQueryParams().WithPerPage(perPage)
			if orderBy != "" {
				params.WithOrderBy(orderBy)
			}

			if order != "" {
				params.WithOrder(store.SortOrder(order))
			}

			categories, err := client.ProductCategories().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			return outputCategories(categories)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 10, "number of categories per page")
	cmd.Flags().StringVar(&orderBy, "orderby", "", "sort attribute (name, id, count, slug)")
	cmd.Flags().StringVar(&order, "order", "", "sort direction (asc, desc)")

	return cmd
}

func outputCategories(categories *store.List[store.ProductCategory]) error {
	if done, err := renderStructured(categories); done || err != nil {
		return err
	}

	if len(categories.Items) == 0 {
		_, _ = os.Stdout.WriteString("No categories found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Slug", "Products")

	for _, category := range categories.Items {
		count := "0"
		if category.Count != nil {
			count = strconv.Itoa(*category.Count)
		}

		_ = table.Append(strconv.FormatInt(category.ID, 10), category.Name,
			strOrDash(category.Slug), count)
	}

	_ = table.Render()

	return nil
}

func newCategoriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CATEGORY_ID",
		Short: "Show a product category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrInvalidCategoryID
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			category, err := client.ProductCategories().Get(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get category: %w", err)
			}

			if done, err := renderStructured(category); done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", strconv.FormatInt(category.ID, 10))
			_ = table.Append("Name", category.Name)
			_ = table.Append("Slug", strOrDash(category.Slug))
			_ = table.Append("Description", strOrDash(category.Description))
			_ = table.Render()

			return nil
		},
	}
}

func newCategoriesCreateCommand() *cobra.Command {
	var (
		name   string
		parent int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product category",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			category := &store.ProductCategory{Name: name}
			if parent > 0 {
				category.Parent = store.Ptr(parent)
			}

			created, err := client.ProductCategories().Create(context.Background(), category)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created category '%s' with ID %d\n", created.Name, created.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "category name (required)")
	cmd.Flags().Int64Var(&parent, "parent", 0, "parent category ID")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoriesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CATEGORY_ID",
		Short: "Delete a product category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrInvalidCategoryID
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.ProductCategories().Delete(context.Background(), id, force)
			if err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted category '%s'\n", deleted.Name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "bypass the trash and delete permanently")

	return cmd
}
