package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fr0stylo/quoterecon/internal/adapters/qbo"
	"github.com/fr0stylo/quoterecon/internal/adapters/sqlite"
	"github.com/fr0stylo/quoterecon/internal/app/services"
	"github.com/fr0stylo/quoterecon/internal/observability"
)

func replayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Run a stored notification body through reconciliation",
		Long: `Replay reads a webhook body captured from the accounting provider,
parses it exactly as the webhook endpoint would, and reconciles every
invoice creation event against the stored quotes. Signatures are not checked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read notification: %w", err)
			}

			env, err := openToolEnv(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer env.Close()

			correlationID := uuid.NewString()
			ctx := observability.WithRequestMetadata(cmd.Context(), correlationID, "replay")

			notification, err := services.ParseNotification(ctx, http.Header{}, body)
			if err != nil {
				return fmt.Errorf("parse notification: %w", err)
			}

			oauth := qbo.NewOAuth(qbo.OAuthConfig{
				ClientID:     env.cfg.QBO.ClientID,
				ClientSecret: env.cfg.QBO.ClientSecret,
				RedirectURL:  env.cfg.QBO.RedirectURL,
				TokenURL:     env.cfg.QBO.TokenURL,
				AuthURL:      env.cfg.QBO.AuthURL,
				Timeout:      env.cfg.QBO.Timeout,
			})
			invoices := qbo.NewClient(qbo.ClientConfig{
				BaseURL:      env.cfg.QBO.APIBaseURL,
				MinorVersion: env.cfg.QBO.MinorVersion,
				Timeout:      env.cfg.QBO.Timeout,
			})
			credentials := services.NewCredentialService(sqlite.NewCredentialStore(env.database), oauth, env.log)
			reconciler := services.NewReconcileService(credentials, invoices, sqlite.NewQuoteStore(env.database), env.log)

			report, err := reconciler.Reconcile(ctx, notification)
			if err != nil {
				return fmt.Errorf("reconcile: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Replay %s\n", correlationID)
			return printReport(cmd.OutOrStdout(), report)
		},
	}
}

func printReport(w io.Writer, report services.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INVOICE\tREALM\tOUTCOME\tMATCHED\tUNMATCHED\tREASON")
	for _, entity := range report.Entities {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			entity.InvoiceID,
			entity.RealmID,
			entity.Outcome,
			entity.MatchedLines,
			entity.UnmatchedLines,
			entity.Reason,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d processed, %d updated, %d ignored\n",
		len(report.Entities), report.Count(services.OutcomeUpdated), report.Ignored)
	return err
}
