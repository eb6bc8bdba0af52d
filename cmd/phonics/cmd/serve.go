package cmd

import (
	"github.com/spf13/cobra"

	"github.com/f3rmion/phonics/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP server",
	Long: `Serve exposes the analyzer over HTTP.

POST /analyze with a JSON body of {"word": "..."} returns the full
breakdown; GET /health reports the loaded dictionary size. The listen
address comes from config.yaml unless --listen is given.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "listen", "", "listen address (default from config, :5001)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()
	svc, err := loadService(log)
	if err != nil {
		return err
	}

	addr, err := serverListen(serveAddr)
	if err != nil {
		return err
	}

	return server.New(svc, log).ListenAndServe(addr)
}
