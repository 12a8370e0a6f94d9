package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wasserpuncher/loglens/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over HTTP",
	Long: `Expose the analysis pipeline over HTTP: POST a log stream to
/api/analyze for a one-shot JSON summary, or stream chunks of lines over
the /ws WebSocket endpoint for running summaries.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	s := server.New(servePort)
	fmt.Fprintf(os.Stderr, "loglens listening on :%s\n", servePort)
	return s.Start()
}
