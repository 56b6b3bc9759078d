package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/guttosm/pricescope/config"
	"github.com/guttosm/pricescope/internal/app"
	"github.com/guttosm/pricescope/internal/daterange"
	"github.com/guttosm/pricescope/internal/domain/dto"
	"github.com/guttosm/pricescope/internal/query"
)

// openServices connects the stores for a one-shot command; overridden in tests.
var openServices = func() (app.Services, func(), error) {
	db, rdb, cleanup, err := app.Connect()
	if err != nil {
		return app.Services{}, nil, err
	}
	return app.NewServices(db, rdb, config.AppConfig), cleanup, nil
}

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Print one page of supplier offers as JSON",
	Args:  cobra.NoArgs,
	RunE:  runOffers,
}

var historyCmd = &cobra.Command{
	Use:   "history [product-id]",
	Short: "Print the daily price history of a product as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	offersCmd.Flags().String("supplier", "", "Supplier substring filter")
	offersCmd.Flags().String("sku", "", "Source SKU substring filter")
	offersCmd.Flags().String("sort", string(query.SortObservedAt), "Sort key: observed_at, supplier, source_sku, price, currency, product_id")
	offersCmd.Flags().Bool("desc", true, "Sort descending")
	offersCmd.Flags().Int("page", 0, "Zero-based page index")
	offersCmd.Flags().Int("page-size", query.DefaultPageSize, "Rows per page: 25, 50 or 100")
	rootCmd.AddCommand(offersCmd)

	historyCmd.Flags().String("preset", string(daterange.DefaultPreset), "Range preset: 30d, 90d, 6m, 1y, all")
	historyCmd.Flags().String("from", "", "Start date YYYY-MM-DD (overrides the preset start)")
	historyCmd.Flags().String("to", "", "End date YYYY-MM-DD (overrides the preset end)")
	rootCmd.AddCommand(historyCmd)
}

func runOffers(cmd *cobra.Command, _ []string) error {
	supplier, _ := cmd.Flags().GetString("supplier")
	sku, _ := cmd.Flags().GetString("sku")
	sortKey, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	key, err := query.ParseSortKey(sortKey)
	if err != nil {
		return err
	}
	spec := query.Spec{
		Supplier:  supplier,
		SKU:       sku,
		Sort:      key,
		Ascending: !desc,
		Page:      page,
		PageSize:  pageSize,
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	svcs, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svcs.Offers.List(cmd.Context(), spec)
	if err != nil {
		return fmt.Errorf("failed to load offers: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), dto.NewOfferPageResponse(result, string(spec.Sort), spec.Ascending))
}

func runHistory(cmd *cobra.Command, args []string) error {
	presetFlag, _ := cmd.Flags().GetString("preset")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	preset, err := daterange.ParsePreset(presetFlag)
	if err != nil {
		return err
	}
	sel := daterange.Selection{Preset: preset, From: from, To: to}
	rng, err := sel.Resolve(time.Now())
	if err != nil {
		return err
	}

	svcs, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	hist, err := svcs.History.Load(cmd.Context(), args[0], rng)
	if err != nil {
		return fmt.Errorf("failed to load product history: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), dto.NewProductHistoryResponse(hist, preset))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
