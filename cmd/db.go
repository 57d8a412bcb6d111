package cmd

import (
	"github.com/communityconnect/connect/server"
	"github.com/communityconnect/connect/server/models"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect the Community Connect database",
}

var dbCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the database is reachable and carries the expected schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		serverConfig := serverConfig()

		err := models.Connect(serverConfig.GetString("sqlite.passPhrase"), server.ConfigDirectory(isDevEnv))
		if err != nil {
			return formattedError("unable to open database: %v", err)
		}

		if !models.Ping() {
			return formattedError("database check failed: schema is incomplete or unreachable")
		}

		volunteerCount, _ := models.VolunteerCount()
		organisationCount, _ := models.OrganisationCount()
		eventCount, _ := models.EventCount()

		cmd.Printf("database ok: %v volunteers, %v organisations, %v events\n",
			volunteerCount, organisationCount, eventCount)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbCheckCmd)

	dbCheckCmd.Flags().StringVar(&serverConfigFile, "sconfig", "", "Config for server")
}
