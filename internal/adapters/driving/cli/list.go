package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repolist/internal/core/domain"
)

var (
	listOwner string
	listURL   bool
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List repositories",
	Long: `Fetches every repository visible to the authenticated user and prints one
name per line. Nothing is printed unless the whole listing succeeds.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	addListFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&listOwner, "owner", "o", "",
		"only list repositories owned by this user or organisation")
	cmd.Flags().BoolVar(&listURL, "url", false, "print the repository URL after the name")
	cmd.Flags().BoolVar(&listJSON, "json", false, "output repositories as JSON")
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if cmd.Flags().Changed("owner") {
		settings.OwnerFilter = listOwner
	}

	repoService, err := repositoryServiceFactory(settings)
	if err != nil {
		return err
	}

	repos, err := repoService.List(cmd.Context(), domain.ListOptions{OwnerFilter: settings.OwnerFilter})
	if err != nil {
		return fmt.Errorf("list repositories: %w", err)
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return outputListJSON(out, repos)
	}
	outputListText(out, repos, listURL)
	return nil
}

func outputListJSON(w io.Writer, repos []domain.Repository) error {
	if repos == nil {
		repos = []domain.Repository{}
	}
	data, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repositories: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputListText(w io.Writer, repos []domain.Repository, withURL bool) {
	for i := range repos {
		if withURL {
			fmt.Fprintf(w, "%s\t%s\n", repos[i].GetName(), repos[i].GetURL())
			continue
		}
		fmt.Fprintln(w, repos[i].GetName())
	}
}
