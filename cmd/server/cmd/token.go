package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/venuebook/server/internal/api/middleware"
)

var tokenCmd = &cobra.Command{
	Use:   "token [identity]",
	Short: "Print a dev bearer token for an identity",
	Long: `Print the bearer token that authenticates as the given identity.

Dev tokens are not secrets: any token of the form "Bearer local-<id>"
is accepted, and <id> becomes the ownerId on created events. The
default identity is "dev".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identity := "dev"
		if len(args) == 1 {
			identity = args[0]
		}
		if _, err := middleware.ParseDevToken("Bearer " + middleware.DevTokenPrefix + identity); err != nil {
			return fmt.Errorf("invalid identity %q: %w", identity, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Bearer %s%s\n", middleware.DevTokenPrefix, identity)
		fmt.Fprintf(out, "\nTest with:\n")
		fmt.Fprintf(out, "curl -H 'Authorization: Bearer %s%s' http://localhost:8080/api/v1/events\n",
			middleware.DevTokenPrefix, identity)
		return nil
	},
}
