package commands

import (
	"errors"
	"net"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversation server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ln, err := net.Listen("tcp", serveAddr)
		if err != nil {
			return err
		}

		err = server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", server.DefaultAddr, "Address to listen on")
}
