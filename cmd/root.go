package cmd

import (
	"fmt"

	"github.com/communityconnect/connect/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	config *viper.Viper

	isDevEnv bool

	yellow       = color.New(color.FgYellow).SprintFunc()
	red          = color.New(color.FgRed).SprintFunc()
	warningLabel = yellow("Warning:")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd = createRootCmd()
	rootCmd.Version = fmt.Sprintf("v%s", version.Version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "connect",
		Short: `Community Connect pairs volunteers with local organisations & their events.

The server exposes CRUD forms over the volunteer database plus a handful
of reporting views(event statistics, skill distribution, organisation summaries).`,
	}

	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")

	return cmd
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(red(format), a...)
}
