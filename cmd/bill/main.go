package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledgerline-io/bill-client/cmd/bill/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bill",
	Short: "Bill.com API v3 CLI",
	Long: `A command-line interface for interacting with the Bill.com API v3.

This CLI provides access to Bill.com resources including vendors, bills,
invoices, customers, payments, credit memos, and accounting classifications.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.bill/config.yml)")
	rootCmd.PersistentFlags().StringP("username", "u", "", "Bill.com username")
	rootCmd.PersistentFlags().String("org-id", "", "Bill.com organization ID")
	rootCmd.PersistentFlags().String("dev-key", "", "Bill.com developer key")
	rootCmd.PersistentFlags().StringP("env", "e", "sandbox", "environment (sandbox, production)")
	rootCmd.PersistentFlags().String("endpoint", "", "gateway URL override")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "log HTTP requests and responses")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	_ = viper.BindPFlag("org_id", rootCmd.PersistentFlags().Lookup("org-id"))
	_ = viper.BindPFlag("dev_key", rootCmd.PersistentFlags().Lookup("dev-key"))
	_ = viper.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env"))
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())

	for _, cmd := range commands.NewEntityCommands() {
		rootCmd.AddCommand(cmd)
	}
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.bill/config.yml
		viper.AddConfigPath(filepath.Join(home, ".bill"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match (BILL_USERNAME, BILL_PASSWORD,
	// BILL_ORG_ID, BILL_DEV_KEY, ...)
	viper.SetEnvPrefix("BILL")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
