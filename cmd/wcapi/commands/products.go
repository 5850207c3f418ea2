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

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage products",
		Long:    "List, inspect, create, and delete store products",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsCreateCommand())
	cmd.AddCommand(newProductsDeleteCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var (
		perPage int
		page    int
		search  string
		status  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := store.NewQueryParams().WithPerPage(perPage).WithPage(page)
			if search != "" {
				params.WithSearch(search)
			}

			if status != "" {
				params.WithFilter("status", status)
			}

			products, err := client.Products().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			return outputProducts(products)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 10, "number of products per page")
	cmd.Flags().IntVar(&page, "page", 1, "page to fetch")
	cmd.Flags().StringVar(&search, "search", "", "search string")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, pending, private, publish)")

	return cmd
}

func outputProducts(products *store.List[store.Product]) error {
	if done, err := renderStructured(products); done || err != nil {
		return err
	}

	if len(products.Items) == 0 {
		_, _ = os.Stdout.WriteString("No products found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "SKU", "Price", "Stock")

	for _, product := range products.Items {
		stock := "-"
		if product.StockQuantity != nil {
			stock = strconv.Itoa(*product.StockQuantity)
		}

		_ = table.Append(strconv.FormatInt(product.ID, 10), product.Name,
			strOrDash(product.SKU), strOrDash(product.Price), stock)
	}

	_ = table.Render()

	if products.Meta.TotalPages > 1 {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d products (%d pages)\n",
			len(products.Items), products.Meta.Total, products.Meta.TotalPages)
	}

	return nil
}

func newProductsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrInvalidProductID
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			product, err := client.Products().Get(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}

			return outputProductDetails(product)
		},
	}

	return cmd
}

func outputProductDetails(product *store.Product) error {
	if done, err := renderStructured(product); done || err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.FormatInt(product.ID, 10))
	_ = table.Append("Name", product.Name)
	_ = table.Append("SKU", strOrDash(product.SKU))
	_ = table.Append("Price", strOrDash(product.Price))

	if product.Status != nil {
		_ = table.Append("Status", string(*product.Status))
	}

	if product.StockQuantity != nil {
		_ = table.Append("Stock", strconv.Itoa(*product.StockQuantity))
	}

	if product.DateCreated != nil {
		_ = table.Append("Created", product.DateCreated.Format("2006-01-02 15:04:05"))
	}

	_ = table.Render()

	return nil
}

func newProductsCreateCommand() *cobra.Command {
	var (
		name         string
		sku          string
		regularPrice string
		description  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			product := &store.Product{Name: name}
			if sku != "" {
				product.SKU = store.Ptr(sku)
			}

			if regularPrice != "" {
				product.RegularPrice = store.Ptr(regularPrice)
			}

			if description != "" {
				product.Description = store.Ptr(description)
			}

			created, err := client.Products().Create(context.Background(), product)
			if err != nil {
				return fmt.Errorf("failed to create product: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created product '%s' with ID %d\n", created.Name, created.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "product name (required)")
	cmd.Flags().StringVar(&sku, "sku", "", "stock keeping unit")
	cmd.Flags().StringVar(&regularPrice, "price", "", "regular price")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProductsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PRODUCT_ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrInvalidProductID
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.Products().Delete(context.Background(), id, force)
			if err != nil {
				return fmt.Errorf("failed to delete product: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted product '%s'\n", deleted.Name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "bypass the trash and delete permanently")

	return cmd
}
