package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	devConfig "github.com/communityconnect/connect/dev/config"
	"github.com/communityconnect/connect/server"
	"github.com/communityconnect/connect/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Community Connect web server",
	Long:  `The server exposes the volunteer/organisation/event CRUD forms and reporting views over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start(serverConfig(), isDevEnv)
	},
}

var serverConfigFile string

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringVar(&serverConfigFile, "sconfig", "", "Config for server")
}

func serverConfig() *viper.Viper {
	config = viper.New()

	if isDevEnv {
		serverConfigFile = devConfigFilePath()
	}

	if serverConfigFile == "" {
		log.Panic(fmt.Sprintf("%v a server config is required, pass one with --sconfig or use --dev", warningLabel))
	}

	config.SetConfigFile(serverConfigFile)
	config.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		log.Panic(fmt.Sprintf("error reading server config file: %v", err))
	}

	return config
}

// devConfigFilePath returns the path to dev/config/server.yml, creating the
// file from the default dev config if it's not there yet.
func devConfigFilePath() string {
	workingDir, err := os.Getwd()
	if err != nil {
		log.Panic(err)
	}

	configFilePath := filepath.Join(workingDir, "dev", "config", "server.yml")
	if !utils.FileExist(configFilePath) {
		if err := utils.CreateDirIfNotExist(filepath.Dir(configFilePath)); err != nil {
			log.Panic(err)
		}

		if err := ioutil.WriteFile(configFilePath, []byte(devConfig.SERVER_YML), 0600); err != nil {
			log.Panic(err)
		}
	}

	return configFilePath
}
