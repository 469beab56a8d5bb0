package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repolist/internal/adapters/driven/auth"
	"github.com/custodia-labs/repolist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/repolist/internal/connectors/github"
	"github.com/custodia-labs/repolist/internal/core/domain"
	"github.com/custodia-labs/repolist/internal/core/ports/driving"
	"github.com/custodia-labs/repolist/internal/core/services"
	"github.com/custodia-labs/repolist/internal/logger"
)

// EnvConfigDir overrides the config directory when --config-dir is not set.
const EnvConfigDir = "REPOLIST_CONFIG_DIR"

var (
	version = "dev"

	verbose   bool
	configDir string

	settingsService driving.SettingsService

	// repositoryServiceFactory builds the listing service from resolved settings.
	repositoryServiceFactory = newRepositoryService
)

var rootCmd = &cobra.Command{
	Use:   "repolist",
	Short: "List every GitHub repository you can access",
	Long: `repolist fetches all repositories visible to the authenticated GitHub user
through the GraphQL API, following pagination until the last page, and prints
their names. Use --owner to keep only one user's or organisation's repositories.

Configure a personal access token first:
  repolist config set-token`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runList,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default ~/.repolist, or $"+EnvConfigDir+")")
	addListFlags(rootCmd)
}

// SetVersion sets the version reported by the version command and user agent.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// getSettingsService returns the configured settings service,
// creating the file-backed one on first use.
func getSettingsService() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}

	dir := configDir
	if dir == "" {
		dir = os.Getenv(EnvConfigDir)
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Using config file %s", store.Path())

	settingsService = services.NewSettingsService(store, nil)
	return settingsService, nil
}

// newRepositoryService wires the GitHub connector into a repository service.
func newRepositoryService(settings *domain.Settings) (driving.RepositoryService, error) {
	if settings.UserAgent == "" {
		settings.UserAgent = github.DefaultUserAgent + "/" + version
	}

	cfg, err := github.ParseConfig(*settings)
	if err != nil {
		return nil, err
	}

	connector := github.New(cfg, auth.NewStaticTokenProvider(settings.Token))
	return services.NewRepositoryService(connector), nil
}
