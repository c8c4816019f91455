package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"textguardian/internal/logger"
	"textguardian/internal/profile"
	"textguardian/internal/workspace"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// ErrIssuesFound is returned by analyze --fail-on-issues when any report
// flags a problem.
var ErrIssuesFound = errors.New("writing issues found")

// App carries the state of one command-line invocation. Nothing in it is
// global, so tests can run several apps side by side.
type App struct {
	flags    *Flags
	v        *viper.Viper
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	log      *slog.Logger
	registry *profile.Registry
}

func NewApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		flags:  NewFlags(),
		v:      viper.New(),
		in:     in,
		out:    out,
		errOut: errOut,
		log:    slog.New(slog.DiscardHandler),
	}
}

// Execute runs the command tree with args (os.Args[1:] in production).
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.CreateRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// CreateRootCommand creates and configures the root cobra command
func (a *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textguardian",
		Short: "Academic writing checker",
		Long: `textguardian flags weak academic style: repeated words, participles,
gerunds, discouraged expressions, vague adjectives and commas before the
connective ("y" / "and").

Examples:
  textguardian analyze ensayo.md
  textguardian analyze -l en "papers/**/*.md"
  cat draft.txt | textguardian analyze --format json
  textguardian watch ensayo.md`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig()
		},
	}
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	a.setupFlags(rootCmd)
	rootCmd.AddCommand(
		a.newAnalyzeCommand(),
		a.newWatchCommand(),
		a.newLanguagesCommand(),
		a.newInitCommand(),
	)
	return rootCmd
}

func (a *App) setupFlags(cmd *cobra.Command) {
	flags := a.flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.textguardian/config.yaml)")
	pf.StringVarP(&flags.Language, "language", "l", flags.Language, "language profile: es, en, or any loaded profile code/alias")
	pf.StringVarP(&flags.Format, "format", "f", flags.Format, "output format: text or json")
	pf.IntVar(&flags.Workers, "workers", 0, "run detectors on up to N goroutines (0 or 1 runs them sequentially)")
	pf.StringVar(&flags.ProfilesDir, "profiles-dir", "", "directory of extra language profiles (*.yaml)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "log format: text or json")

	bindFlagsToViper(a.v, pf)
}

func bindFlagsToViper(v *viper.Viper, fs *pflag.FlagSet) {
	v.BindPFlag("language", fs.Lookup("language"))
	v.BindPFlag("format", fs.Lookup("format"))
	v.BindPFlag("workers", fs.Lookup("workers"))
	v.BindPFlag("profiles_dir", fs.Lookup("profiles-dir"))
	v.BindPFlag("log.level", fs.Lookup("log-level"))
	v.BindPFlag("log.format", fs.Lookup("log-format"))
}

// initConfig reads the config file and environment, sets up logging and
// loads extra profiles. Precedence: flag, env, config file, default.
func (a *App) initConfig() error {
	v := a.v
	if a.flags.CfgFile != "" {
		v.SetConfigFile(a.flags.CfgFile)
	} else if dir, err := workspace.DefaultDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName(strings.TrimSuffix(workspace.ConfigFileName, filepath.Ext(workspace.ConfigFileName)))
		v.SetConfigType("yaml")
		v.SetDefault("profiles_dir", filepath.Join(dir, workspace.ProfilesDir))
	}

	v.SetEnvPrefix("TEXTGUARDIAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.flags.CfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level, err := logger.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return err
	}
	cfg := logger.DefaultConfig()
	cfg.Level = level
	cfg.Format = v.GetString("log.format")
	cfg.Output = a.errOut
	a.log = logger.New(cfg).With("component", "cli")
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", "path", used)
	}

	a.registry = profile.NewRegistry()
	if dir := v.GetString("profiles_dir"); dir != "" {
		loaded, err := a.registry.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		if len(loaded) > 0 {
			a.log.Debug("loaded profiles", "dir", dir, "languages", loaded)
		}
	}
	return nil
}

// resolveProfile never fails: unknown selectors fall back to the primary
// profile with a warning.
func (a *App) resolveProfile() profile.Profile {
	selector := a.v.GetString("language")
	if p, ok := a.registry.Lookup(selector); ok {
		return p
	}
	p := a.registry.Resolve(selector)
	a.log.Warn("unknown language, using default profile", "language", selector, "profile", p.Language)
	return p
}

func (a *App) format() (string, error) {
	format := strings.ToLower(a.v.GetString("format"))
	switch format {
	case "text", "json":
		return format, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text or json)", format)
}
