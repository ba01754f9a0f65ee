package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seqbench/internal/config"
	"seqbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
// Running seqbench bare is the same as seqbench run.
var rootCmd = &cobra.Command{
	Use:   "seqbench",
	Short: "Micro-benchmarks for Go sequential containers",
	Long: `seqbench measures vector, linked-list and deque performance across fill,
linear-search, random insert/remove, sort and teardown workloads, for payload
types of varying size and copy cost, and renders the results as an HTML chart
report.`,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.seqbench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}
