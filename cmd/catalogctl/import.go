package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/furniture-catalog/internal/db"
	"github.com/rogerio-castellano/furniture-catalog/internal/importer"
	"github.com/rogerio-castellano/furniture-catalog/internal/repo"
)

func newImportCmd(root *rootOptions) *cobra.Command {
	var (
		out         string
		databaseURL string
	)

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Convert a CSV export into products.json",
		Long: `Reads a CSV file with a header row and writes the catalog file.
Columns are detected by header name: name/product, category/type, price,
image/url/photo and new/arrival. Rows without a name are skipped.

With --database-url the products also replace the contents of the
Postgres products table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := importer.Import(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			root.logger.Debug("parsed csv",
				zap.Int("products", len(res.Products)),
				zap.Ints("skipped_rows", res.Skipped))

			if err := writeTo(cmd, out, func(w io.Writer) error {
				return importer.WriteJSON(w, res.Products)
			}); err != nil {
				return err
			}

			if databaseURL != "" {
				if err := replaceInPostgres(cmd.Context(), databaseURL, res); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "✅ Imported %d products (%d rows skipped)\n", len(res.Products), len(res.Skipped))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "also load the products into this Postgres database")
	return cmd
}

func replaceInPostgres(ctx context.Context, url string, res importer.Result) error {
	database, err := db.Connect(url)
	if err != nil {
		return err
	}
	defer database.Close()

	pg := repo.NewPostgresProductRepository(database)
	if err := pg.EnsureSchema(ctx); err != nil {
		return err
	}
	return pg.ReplaceAll(ctx, res.Products)
}

// writeTo runs write against stdout for "-" or against the named file.
func writeTo(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
