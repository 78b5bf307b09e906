package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/gin"
	"github.com/bobinette/notenet/jwt"
	"github.com/bobinette/notenet/mock"
)

var (
	serveAddr string
	serveKey  string
)

func init() {
	ServeCommand.Flags().StringVar(&serveAddr, "addr", ":5000", "address to listen on")
	ServeCommand.Flags().StringVar(&serveKey, "key", "", "key signing the tokens, defaults to $NOTENET_SIGNING_KEY")

	RootCmd.AddCommand(&ServeCommand)
}

var ServeCommand = cobra.Command{
	Use:   "serve",
	Short: "Run a local notes API",
	Long:  "Run an in-memory notes API seeded with the acme and globex tenants, for development",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key := serveKey
		if key == "" {
			key = os.Getenv("NOTENET_SIGNING_KEY")
		}
		if key == "" {
			return errors.New("a signing key is required, use --key or NOTENET_SIGNING_KEY", errors.BadRequest())
		}

		backend, err := mock.Seeded()
		if err != nil {
			return err
		}

		handler := gin.New(backend, jwt.NewEncodeDecoder([]byte(key)), logger)
		logger.Printf("notes API listening on %s/api, accounts use the password %q", serveAddr, mock.DefaultPassword)
		return http.ListenAndServe(serveAddr, handler)
	},
}
