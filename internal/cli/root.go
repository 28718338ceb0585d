// Package cli implements the dactl command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	client "github.com/peteraglen/directadmin-go-client"
	"github.com/peteraglen/directadmin-go-client/internal/config"
	"github.com/peteraglen/directadmin-go-client/internal/logger"
)

// New creates the root dactl command.
func New(version string, log *slog.Logger) *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "dactl",
		Short:         "Run commands against the DirectAdmin API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "file with DIRECTADMIN_* variables (default .env if present)")

	root.AddCommand(newVersionCmd(version))
	root.AddCommand(newExecCmd(&envFile, log))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version)
		},
	}
}

func newExecCmd(envFile *string, log *slog.Logger) *cobra.Command {
	var (
		data     []string
		timeout  time.Duration
		insecure bool
	)

	cmd := &cobra.Command{
		Use:     "exec COMMAND",
		Short:   "POST a command, e.g. CMD_API_SHOW_ALL_USERS",
		Example: "  dactl exec CMD_API_SHOW_USER_CONFIG -d user=sampleuser",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formData, err := parseFormData(data)
			if err != nil {
				return err
			}

			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}

			c, err := client.New(cfg,
				client.WithRequestLogger(logger.NewRequestLogger(log)),
				client.WithTimeout(timeout),
				client.WithInsecureSkipVerify(insecure),
			)
			if err != nil {
				return err
			}

			resp, err := c.Execute(cmd.Context(), args[0], formData)
			if err != nil {
				var transportErr *client.TransportError
				if errors.As(err, &transportErr) {
					log.Error("command failed",
						"command", args[0],
						"url", transportErr.URL,
						"failure_email", cfg.FailureEmail,
						"error", transportErr.Err)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "HTTP %d\n%s", resp.StatusCode, resp.Body)
			if !strings.HasSuffix(resp.Body, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&data, "data", "d", nil, "form field as key=value, repeatable")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout, 0 disables it")
	cmd.Flags().BoolVar(&insecure, "insecure", false, "skip TLS certificate verification")

	return cmd
}

// parseFormData turns key=value pairs into form data. The result is never
// nil so that a command without fields is still sent.
func parseFormData(pairs []string) (map[string]string, error) {
	formData := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid form field %q: expected key=value", pair)
		}
		formData[strings.TrimSpace(key)] = value
	}

	return formData, nil
}
