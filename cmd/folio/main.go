package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oubasys/portfolio/internal/client"
)

var (
	apiURL  string
	skipAsk bool

	api     *client.Client
	store   *client.Store
	editor  *client.Editor
	session *client.Session
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Manage the portfolio backend from the terminal",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		creds, err := client.NewFileCredentialStore()
		if err != nil {
			return fmt.Errorf("opening credential store: %w", err)
		}

		log := logrus.New()
		log.SetLevel(logrus.ErrorLevel)

		api = client.New(client.Config{
			BaseURL:     apiURL,
			Credentials: creds,
			Log:         log,
		})
		store = client.NewStore(api)
		editor = client.NewEditor(api, store)
		session = client.NewSession(api)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default: PORTFOLIO_API_URL or local server)")
	rootCmd.PersistentFlags().BoolVarP(&skipAsk, "yes", "y", false, "skip confirmation prompts")
}

// confirm asks before destructive operations unless --yes was given.
func confirm(what string) client.ConfirmFunc {
	return func() bool {
		if skipAsk {
			return true
		}
		fmt.Printf("Delete %s? [y/N] ", what)
		var answer string
		fmt.Scanln(&answer)
		return answer == "y" || answer == "Y" || answer == "yes"
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
