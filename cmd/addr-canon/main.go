package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/addr-canon/internal/config"
	"github.com/addr-canon/internal/pipeline"
	"github.com/addr-canon/internal/tagger/postal"
	"github.com/addr-canon/internal/web"
)

var debugFlag bool

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "addr-canon",
		Short: "US/Canada address canonicalization service",
		Long:  `Converts free-form postal address text into canonical addr:* fields and formats NANP phone numbers`,
	}
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable pipeline trace logging")

	rootCmd.AddCommand(createParseCmd())
	rootCmd.AddCommand(createPhoneCmd())
	rootCmd.AddCommand(createServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createParseCmd parses one address string and prints the result as JSON.
func createParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [address]",
		Short: "Canonicalize one address string",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pipe := newPipeline()
			fields, removed, err := pipe.Address(strings.Join(args, " "))
			if err != nil {
				log.Fatalf("Failed to process address: %v", err)
			}

			out, err := json.MarshalIndent(web.AddressResponse{Fields: fields, Removed: removed}, "", "  ")
			if err != nil {
				log.Fatalf("Failed to encode result: %v", err)
			}
			fmt.Println(string(out))
		},
	}
}

// createPhoneCmd formats one phone number.
func createPhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone [number]",
		Short: "Format a US/Canada phone number",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			formatted, err := pipeline.FormatPhone(args[0])
			if err != nil {
				log.Fatalf("%v", err)
			}
			fmt.Println(formatted)
		},
	}
}

// createServeCmd runs the HTTP API.
func createServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := web.ConfigFromEnv()
			if debugFlag {
				cfg.Debug = true
			}
			pipe := pipeline.New(postal.New(), pipeline.WithDebug(cfg.Debug))
			server := web.NewServer(cfg, pipe)
			if err := server.Start(); err != nil {
				log.Fatalf("Server failed: %v", err)
			}
		},
	}
}

func newPipeline() *pipeline.Pipeline {
	return pipeline.New(postal.New(), pipeline.WithDebug(debugFlag))
}
