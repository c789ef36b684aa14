package commands

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/de-tools/journal-atlas/pkg/services/config"
)

type JournalsCmd struct {
	profilesPath string
}

func NewJournalsCmd() *cobra.Command {
	jc := &JournalsCmd{}
	cmd := &cobra.Command{
		Use:   "journals",
		Short: "List configured journals",
		RunE:  jc.run,
	}

	cmd.Flags().StringVar(&jc.profilesPath, "profiles", defaultProfilesPath(), "Path to the profiles file")

	return cmd
}

func (jc *JournalsCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(jc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %q: %w", jc.profilesPath, err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, profile := range profiles {
		if profile.Description != "" {
			fmt.Fprintf(out, "%s\t%s\n", profile.Name, profile.Description)
		} else {
			fmt.Fprintln(out, profile.Name)
		}
	}
	return nil
}

func defaultProfilesPath() string {
	usr, err := user.Current()
	if err != nil {
		return ".journalatlas"
	}
	return usr.HomeDir + "/.journalatlas"
}
