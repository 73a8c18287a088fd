package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/fr0stylo/quoterecon/internal/adapters/sqlite"
	"github.com/fr0stylo/quoterecon/internal/app/ports"
)

func credentialsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "credentials",
		Short: "Show the connected realm and token freshness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openToolEnv(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer env.Close()

			creds, err := sqlite.NewCredentialStore(env.database).LoadCredentials(cmd.Context())
			if err != nil {
				return fmt.Errorf("no usable credentials, run the connect flow first: %w", err)
			}
			printCredentials(cmd.OutOrStdout(), creds, time.Now())
			return nil
		},
	}
}

func printCredentials(w io.Writer, creds ports.Credentials, now time.Time) {
	fmt.Fprintf(w, "Realm:         %s\n", creds.RealmID)
	fmt.Fprintf(w, "Token type:    %s\n", creds.TokenType)
	fmt.Fprintf(w, "Access token:  %s\n", maskToken(creds.AccessToken))
	fmt.Fprintf(w, "Refresh token: %s\n", maskToken(creds.RefreshToken))
	fmt.Fprintf(w, "Expires:       %s\n", freshness(creds.ExpiresAt, now))
}

// maskToken keeps only the last four characters.
func maskToken(token string) string {
	if token == "" {
		return "(none)"
	}
	if len(token) <= 8 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func freshness(expiresAt, now time.Time) string {
	if expiresAt.IsZero() {
		return "unknown"
	}
	stamp := expiresAt.UTC().Format(time.RFC3339)
	remaining := expiresAt.Sub(now).Round(time.Second)
	if remaining <= 0 {
		return fmt.Sprintf("%s (expired %s ago)", stamp, -remaining)
	}
	return fmt.Sprintf("%s (valid for %s)", stamp, remaining)
}
