package main

//
//  @title           pricescope API
//  @version         1.0
//  @description     Supplier offer browsing and price history analytics.
//  @termsOfService  https://github.com/guttosm/pricescope
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/pricescope
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        offers
//  @tag.description Paged, filtered and sorted supplier offers
//
//  @tag.name        products
//  @tag.description Daily price history of a product
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guttosm/pricescope/config"
	_ "github.com/guttosm/pricescope/docs" // swagger docs
	"github.com/guttosm/pricescope/internal/logger"
)

// loadConfig is an indirection for tests.
var loadConfig = config.LoadConfig

var rootCmd = &cobra.Command{
	Use:           "pricescope",
	Short:         "pricescope - supplier offer browsing and price analytics",
	Long:          "Serves the offer listing and product price history API, or runs the same queries from the command line.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		loadConfig()
		if cmd.Name() == apiCmd.Name() {
			logger.Init()
			return
		}
		// stdout carries JSON results
		logger.InitWithWriter(os.Stderr)
	},
}

// main is the entry point of the pricescope application.
//
// Commands:
//   - api:     Starts the REST API.
//   - offers:  Prints one page of offers as JSON.
//   - history: Prints the price history of a product as JSON.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
