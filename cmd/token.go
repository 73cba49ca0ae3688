package main

import (
	"fmt"
	"time"

	"coshare-scheduler/cmd/bootstrap"
	"coshare-scheduler/internal/domain/user"
	"coshare-scheduler/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	tokenUser string
	tokenRole string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token signed with JWT_SECRET (local tooling only)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, err := uuid.Parse(tokenUser)
		if err != nil {
			return fmt.Errorf("--user must be a UUID: %w", err)
		}
		role, err := user.NewRole(tokenRole)
		if err != nil {
			return fmt.Errorf("--role: %w", err)
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		token, err := bootstrap.NewJWTService(cfg).GenerateToken(userID, role, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "User ID (UUID)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(user.RoleMember), "member, operator or admin")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
}
