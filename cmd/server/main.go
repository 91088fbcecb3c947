// @title Share Registry API
// @version 1.0
// @description 股份登记案件与主数据管理后台 API
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "share-registry",
	Short: "Share registry case-work API",
	Long: `Back-office API for share registry case work: master data
(companies, RTAs, branches, name history) and case document bundles.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Generate the document bundle of a case and print the zip path",
	RunE:  runBundle,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print a bcrypt hash for seeding admin users",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

var bundleCaseID int64

func init() {
	bundleCmd.Flags().Int64Var(&bundleCaseID, "case", 0, "case id")
	_ = bundleCmd.MarkFlagRequired("case")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
