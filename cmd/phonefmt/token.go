package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"phonelink_backend/platform/httpkit"
)

// jwtSecret satisfies config.JWTConfig for token minting.
type jwtSecret string

func (s jwtSecret) GetJWTAccessSecret() string { return string(s) }

func newTokenCmd() *cobra.Command {
	var (
		secret  string
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin access token for the settings API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				return errors.New("a signing secret is required (--secret or JWT_ACCESS_SECRET)")
			}

			sub := uuid.New()
			if subject != "" {
				parsed, err := uuid.Parse(subject)
				if err != nil {
					return fmt.Errorf("invalid --subject: %w", err)
				}
				sub = parsed
			}

			token, err := httpkit.IssueAccessToken(jwtSecret(secret), sub, []string{httpkit.RoleAdmin}, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("JWT_ACCESS_SECRET"), "HS256 signing secret")
	cmd.Flags().StringVar(&subject, "subject", "", "token subject UUID (random when empty)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
