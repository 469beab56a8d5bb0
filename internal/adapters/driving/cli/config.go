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

	"github.com/custodia-labs/repolist/internal/adapters/driving/styles"
	"github.com/custodia-labs/repolist/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the settings stored in the repolist config file.

Environment variables take precedence over the file:
  REPOLIST_TOKEN (or GITHUB_TOKEN), REPOLIST_OWNER_FILTER, REPOLIST_ENDPOINT`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store a GitHub personal access token",
	Long: `Store the personal access token used to authenticate with GitHub.

When the token is omitted it is read from standard input, without echo
when attached to a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigSetToken,
}

var configSetOwnerCmd = &cobra.Command{
	Use:   "set-owner [owner]",
	Short: "Set the default owner filter",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetOwner,
}

var configClearOwnerCmd = &cobra.Command{
	Use:   "clear-owner",
	Short: "Remove the default owner filter",
	Args:  cobra.NoArgs,
	RunE:  runConfigClearOwner,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetTokenCmd)
	configCmd.AddCommand(configSetOwnerCmd)
	configCmd.AddCommand(configClearOwnerCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	st := styles.DefaultStyles()

	fmt.Fprintln(out, styles.Render(out, st.Title, "Current Settings"))
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[GitHub]")
	if settings.HasToken() {
		fmt.Fprintf(out, "  Token: %s\n", domain.MaskToken(settings.Token))
	} else {
		fmt.Fprintf(out, "  Token: %s\n", styles.Render(out, st.Warning, "(not set)"))
	}
	fmt.Fprintf(out, "  Owner filter: %s\n", orDefault(settings.OwnerFilter, "(none)"))
	fmt.Fprintf(out, "  Endpoint: %s\n", settings.Endpoint)
	fmt.Fprintf(out, "  User agent: %s\n", orDefault(settings.UserAgent, "repolist/"+version))
	fmt.Fprintf(out, "  Page size: %d\n", settings.PageSize)
	if settings.MaxPages > 0 {
		fmt.Fprintf(out, "  Max pages: %d\n", settings.MaxPages)
	} else {
		fmt.Fprintln(out, "  Max pages: unbounded")
	}
	if settings.RequestsPerSecond > 0 {
		fmt.Fprintf(out, "  Requests per second: %g\n", settings.RequestsPerSecond)
	} else {
		fmt.Fprintln(out, "  Requests per second: unlimited")
	}
	fmt.Fprintf(out, "  Timeout: %s\n", settings.Timeout)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Config file: %s\n", orDefault(svc.ConfigPath(), "(in memory)"))
	return nil
}

func runConfigSetToken(cmd *cobra.Command, args []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		cmd.Print("GitHub token: ")
		token = readPassword(cmd.InOrStdin())
		cmd.Println()
	}

	if err := svc.SetToken(token); err != nil {
		return err
	}

	cmd.Printf("Token saved (%s)\n", domain.MaskToken(strings.TrimSpace(token)))
	return nil
}

func runConfigSetOwner(cmd *cobra.Command, args []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err := svc.SetOwnerFilter(args[0]); err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Printf("Owner filter set to %s\n", settings.OwnerFilter)
	return nil
}

func runConfigClearOwner(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err := svc.ClearOwnerFilter(); err != nil {
		return err
	}
	cmd.Println("Owner filter cleared")
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// readPassword reads a secret without echo when in is a terminal,
// and a single line otherwise.
func readPassword(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return strings.TrimSpace(input)
}
