package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAdminCommand(opts *rootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create user",
		Long:  "Create the owner account, or update its username and password if it exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())

			var err error
			if username == "" {
				if username, err = promptLine(cmd, in, "Username: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = promptNewPassword(cmd, in); err != nil {
					return err
				}
			}

			services, err := opts.initServices()
			if err != nil {
				return err
			}
			defer services.Close()

			created, err := services.AuthService.Provision(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("failed to save user: %w", err)
			}

			out := cmd.OutOrStdout()
			if created {
				fmt.Fprintln(out, "Creating user...")
			} else {
				fmt.Fprintln(out, "Updating user...")
			}
			fmt.Fprintln(out, "Done.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "The username used to login")
	cmd.Flags().StringVar(&password, "password", "", "The password used to login")
	return cmd
}

func promptLine(cmd *cobra.Command, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptNewPassword asks for the password twice. Input is hidden when
// stdin is a terminal.
func promptNewPassword(cmd *cobra.Command, in *bufio.Reader) (string, error) {
	password, err := promptSecret(cmd, in, "Password: ")
	if err != nil {
		return "", err
	}
	confirm, err := promptSecret(cmd, in, "Repeat for confirmation: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", errors.New("passwords do not match")
	}
	return password, nil
}

func promptSecret(cmd *cobra.Command, in *bufio.Reader, label string) (string, error) {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return promptLine(cmd, in, label)
	}

	fmt.Fprint(cmd.OutOrStdout(), label)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(secret), nil
}
