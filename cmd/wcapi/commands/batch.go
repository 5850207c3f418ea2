package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/storekit-io/wcapi/pkg/store"
)

// NewBatchCommand creates the batch command. The file carries a single
// request envelope: {"create": [...], "update": [...], "delete": [1, 2]}.
func NewBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch RESOURCE FILE",
		Short: "Run batch operations from a JSON file",
		Long: `Read a batch envelope from a JSON file and submit it in one call.

The envelope groups create, update, and delete operations for one resource
type (products, categories, orders, or coupons). Per-operation failures are
reported individually; the command fails only when the call itself does.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, file := args[0], args[1]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			switch resource {
			case "products":
				return runBatchFromFile(ctx, file, client.Products().Batch)
			case "categories":
				return runBatchFromFile(ctx, file, client.ProductCategories().Batch)
			case "orders":
				return runBatchFromFile(ctx, file, client.Orders().Batch)
			case "coupons":
				return runBatchFromFile(ctx, file, client.Coupons().Batch)
			default:
				return fmt.Errorf("%w: %s", store.ErrUnknownResourcePath, resource)
			}
		},
	}
}

func runBatchFromFile[T any](
	ctx context.Context,
	file string,
	call func(ctx context.Context, req *store.BatchRequest[T]) (*store.BatchResponse[T], error),
) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading batch file: %w", err)
	}

	var req store.BatchRequest[T]

	err = json.Unmarshal(data, &req)
	if err != nil {
		return fmt.Errorf("parsing batch file: %w", err)
	}

	if req.IsEmpty() {
		return fmt.Errorf("batch file %s carries no operations", file)
	}

	resp, err := call(ctx, &req)
	if err != nil {
		return fmt.Errorf("batch call failed: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Created %d, updated %d, deleted %d\n",
		len(resp.Create), len(resp.Update), len(resp.Delete))

	failed := resp.Failed()
	for _, result := range failed {
		_, _ = fmt.Fprintf(os.Stdout, "  operation on %d failed: %s\n", result.ID, result.Err.Message)
	}

	if len(failed) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "%d of %d operations failed\n", len(failed), req.Size())
	}

	return nil
}
