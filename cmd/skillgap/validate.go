package main

import (
	"errors"
	"fmt"
	"os"

	"skill-gap/internal/dataset"
	"skill-gap/internal/usecase/auth"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the users and jobs files against the upload schema",
	RunE:  runValidate,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password PASSWORD",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd, hashPasswordCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	failed := false

	check := func(kind, path string, fn func([]byte) (int, error)) {
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", kind, err)
			failed = true
			return
		}
		n, err := fn(raw)
		if err != nil {
			failed = true
			var ve *dataset.ValidationError
			if errors.As(err, &ve) {
				for _, fe := range ve.Errors {
					fmt.Fprintf(out, "%s: %s: %s\n", kind, fe.Field, fe.Message)
				}
				return
			}
			fmt.Fprintf(out, "%s: %v\n", kind, err)
			return
		}
		fmt.Fprintf(out, "%s: %d records OK (%s)\n", kind, n, path)
	}

	check("users", usersPath, func(b []byte) (int, error) {
		u, err := dataset.ValidateUsers(b)
		return len(u), err
	})
	check("jobs", jobsPath, func(b []byte) (int, error) {
		j, err := dataset.ValidateJobs(b)
		return len(j), err
	})

	if failed {
		return errors.New("validation failed")
	}
	return nil
}
