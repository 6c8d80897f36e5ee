// Command skillgap runs skill recommendations against the JSON data files
// without the HTTP server, and can also start the server.
package main

import (
	"fmt"
	"os"

	"skill-gap/internal/config"
	"skill-gap/internal/logging"

	"github.com/spf13/cobra"
)

var (
	usersPath string
	jobsPath  string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:           "skillgap",
	Short:         "Skill gap analysis and recommendations",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logging.Init(logging.Config{Level: logLevel, Format: "console", Output: cmd.ErrOrStderr()})
	},
}

func init() {
	data := config.LoadData()
	rootCmd.PersistentFlags().StringVar(&usersPath, "users", data.UsersPath, "Path to the users JSON file")
	rootCmd.PersistentFlags().StringVar(&jobsPath, "jobs", data.JobsPath, "Path to the jobs JSON file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
