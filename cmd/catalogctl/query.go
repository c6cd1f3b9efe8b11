package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/furniture-catalog/internal/catalog"
	"github.com/rogerio-castellano/furniture-catalog/internal/importer"
	"github.com/rogerio-castellano/furniture-catalog/internal/repo"
)

func loadRepo(path string) (*repo.InMemoryProductRepository, error) {
	products, err := importer.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	return repo.NewInMemoryProductRepository(products, catalog.DefaultPriceTable())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <products.json>",
		Short: "Check a catalog file and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepo(args[0])
			if err != nil {
				return err
			}

			f := r.Facets()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "products: %d\n", f.TotalProducts)
			fmt.Fprintf(w, "new arrivals: %d\n", f.NewArrivals)
			fmt.Fprintf(w, "version: %s\n", r.Fingerprint())
			for _, c := range f.Categories {
				fmt.Fprintf(w, "  %-16s %d\n", c.Label, c.Count)
			}
			return nil
		},
	}
}

func newQueryCmd() *cobra.Command {
	var (
		search      string
		category    string
		priceRanges []string
		sort        string
	)

	cmd := &cobra.Command{
		Use:   "query <products.json>",
		Short: "Run a browse query and print the matching products as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepo(args[0])
			if err != nil {
				return err
			}

			products := r.Filter(catalog.QueryState{
				SearchText:    search,
				Category:      category,
				PriceRangeIDs: priceRanges,
				SortMode:      catalog.ParseSortMode(sort),
			})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(products)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "q", "", "case-insensitive text to find in name or category")
	cmd.Flags().StringVarP(&category, "category", "c", catalog.AllCategories, "exact category")
	cmd.Flags().StringSliceVarP(&priceRanges, "price-range", "p", nil, "price bucket id, repeatable")
	cmd.Flags().StringVarP(&sort, "sort", "s", string(catalog.SortDefault), "default, price-low, price-high or new")
	return cmd
}
