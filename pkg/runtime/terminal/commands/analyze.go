package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/journal-atlas/pkg/models/domain"
	"github.com/de-tools/journal-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/journal-atlas/pkg/services/analytics"
	"github.com/de-tools/journal-atlas/pkg/services/atlas"
	"github.com/de-tools/journal-atlas/pkg/services/config"
	"github.com/de-tools/journal-atlas/pkg/store/duckdb"
)

const flagDateLayout = "2006-01-02"

type AnalyzeCmd struct {
	dbPath       string
	profilesPath string
	journal      string
	from         string
	to           string
	reporter     *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute analytics for a journal",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.dbPath, "db", "journal-atlas.db", "Path to the journal database")
	cmd.Flags().StringVar(&ac.profilesPath, "profiles", defaultProfilesPath(), "Path to the profiles file")
	cmd.Flags().StringVar(&ac.journal, "journal", "", "Journal to analyze")
	cmd.Flags().StringVar(&ac.from, "from", "", "Window start date (YYYY-MM-DD), unbounded when omitted")
	cmd.Flags().StringVar(&ac.to, "to", "", "Window end date (YYYY-MM-DD), unbounded when omitted")

	_ = cmd.MarkFlagRequired("journal")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	window, err := parseWindow(ac.from, ac.to)
	if err != nil {
		return err
	}

	registry, err := config.NewRegistry(ac.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %q: %w", ac.profilesPath, err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ac.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open database %q: %w", ac.dbPath, err)
	}
	defer db.Close()

	explorer := atlas.NewExplorer(registry, db)
	svc, err := explorer.GetJournalService(cmd.Context(), domain.Journal{Name: ac.journal})
	if err != nil {
		return fmt.Errorf("unknown journal %q: %w", ac.journal, err)
	}

	report, err := svc.Analytics(cmd.Context(), window)
	if err != nil {
		return fmt.Errorf("failed to compute analytics: %w", err)
	}

	return ac.reporter.Handle(ac.journal, &report)
}

func parseWindow(from, to string) (analytics.Window, error) {
	var window analytics.Window
	if from != "" {
		parsed, err := time.Parse(flagDateLayout, from)
		if err != nil {
			return analytics.Window{}, fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", from)
		}
		window.Start = parsed
	}
	if to != "" {
		parsed, err := time.Parse(flagDateLayout, to)
		if err != nil {
			return analytics.Window{}, fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", to)
		}
		window.End = parsed
	}
	return window, nil
}
