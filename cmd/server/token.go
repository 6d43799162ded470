package main

import (
	"fmt"

	"github.com/h4ks-com/brewlog/internal/services"
	"github.com/spf13/cobra"
)

var (
	tokenUser    string
	tokenName    string
	tokenExpires string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API token for a user",
	Long: `Mint a bearer token for a user, creating the account if needed.
The token is printed on stdout and is shown only once.`,
	Example: `  brewlog token -u alice
  brewlog token --user alice --name grinder-bot --expires 90d`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !usernameRegex.MatchString(tokenUser) {
			return fmt.Errorf("invalid username %q", tokenUser)
		}
		expiresIn, err := services.ParseExpiry(tokenExpires)
		if err != nil {
			return fmt.Errorf("invalid --expires: %w", err)
		}

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.users.GetOrCreate(tokenUser); err != nil {
			return err
		}
		token, apiToken, err := a.tokens.GenerateNamedToken(tokenUser, tokenName, expiresIn)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		fmt.Fprintf(cmd.ErrOrStderr(), "token %d for %s expires at %s\n",
			apiToken.ID, tokenUser, apiToken.ExpiresAt.Format("2006-01-02 15:04 MST"))
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "Username the token is issued to (required)")
	tokenCmd.Flags().StringVarP(&tokenName, "name", "n", "", "Label shown when listing tokens")
	tokenCmd.Flags().StringVar(&tokenExpires, "expires", "30d", "Token lifetime, e.g. 24h or 30d")
	tokenCmd.MarkFlagRequired("user")
}
