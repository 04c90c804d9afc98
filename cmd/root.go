// file: cmd/root.go
// version: 2.1.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"os"

	"github.com/frenchtools/cj/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var cacheDir string
var providerURL string
var noCache bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cj [person] verb [tense]",
	Short: "Look up French verb conjugations",
	Long: `cj answers French conjugation queries from the terminal.

Modes:
  cj <verb>                   all conjugations
  cj <person> <verb>          every tense for one person
  cj <person> <verb> <tense>  a single form
  cj <verb> <tense>           infinitive and participle forms

Persons: je, tu, il/elle/on, nous, vous, ils/elles. Tenses accept short
aliases (see 'cj aliases'). Results are cached on disk so repeated lookups
of the same verb stay off the network.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd.OutOrStdout(), args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cj.yaml)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "cache directory (default is the user cache dir)")
	rootCmd.Flags().StringVar(&providerURL, "provider-url", "", "conjugation provider base URL")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the conjugation cache")

	viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
	viper.BindPFlag("provider_url", rootCmd.Flags().Lookup("provider-url"))

	rootCmd.AddCommand(aliasesCmd)
	rootCmd.AddCommand(cacheCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cj")
	}

	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	config.InitConfig()
}
