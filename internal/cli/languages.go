package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"textguardian/internal/profile"
	"textguardian/internal/workspace"
)

func (a *App) newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the available language profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			profiles := a.registry.List()
			if format == "json" {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(profiles); err != nil {
					return fmt.Errorf("encode profiles: %w", err)
				}
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tCONNECTIVE\tALIASES")
			for _, p := range profiles {
				code := string(p.Language)
				if p.Language == profile.Primary {
					code += " (default)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", code, p.Name, p.Connective, strings.Join(p.Aliases, ", "))
			}
			return tw.Flush()
		},
	}
}

func (a *App) newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the workspace with a default config file and a profiles directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				root string
				err  error
			)
			if a.flags.WorkspaceDir != "" {
				root, err = workspace.EnsureAt(a.flags.WorkspaceDir)
			} else {
				root, err = workspace.EnsureDefault()
			}
			if err != nil {
				return fmt.Errorf("workspace initialization failed: %w", err)
			}
			settings, err := workspace.LoadSettings(root)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Workspace ready at: %s\n", root)
			fmt.Fprintf(a.out, "Default language: %s, profiles: %s\n", settings.Language, settings.ProfilesDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&a.flags.WorkspaceDir, "dir", "", "workspace directory (default is $HOME/.textguardian)")
	return cmd
}
