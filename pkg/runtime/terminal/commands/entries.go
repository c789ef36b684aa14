package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/journal-atlas/pkg/models/domain"
	"github.com/de-tools/journal-atlas/pkg/services/atlas"
	"github.com/de-tools/journal-atlas/pkg/services/config"
	journalsvc "github.com/de-tools/journal-atlas/pkg/services/journal"
	"github.com/de-tools/journal-atlas/pkg/store/duckdb"
)

type EntriesCmd struct {
	dbPath       string
	profilesPath string
	journal      string

	date           string
	content        string
	mood           string
	secondaryMoods []string
	tags           string

	from string
	to   string
}

func NewEntriesCmd() *cobra.Command {
	ec := &EntriesCmd{}
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Manage journal entries",
	}

	cmd.PersistentFlags().StringVar(&ec.dbPath, "db", "journal-atlas.db", "Path to the journal database")
	cmd.PersistentFlags().StringVar(&ec.profilesPath, "profiles", defaultProfilesPath(), "Path to the profiles file")
	cmd.PersistentFlags().StringVar(&ec.journal, "journal", "", "Journal to operate on")
	_ = cmd.MarkPersistentFlagRequired("journal")

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		RunE:  ec.runAdd,
	}
	addCmd.Flags().StringVar(&ec.date, "date", "", "Entry date (YYYY-MM-DD), today when omitted")
	addCmd.Flags().StringVar(&ec.content, "content", "", "Entry text")
	addCmd.Flags().StringVar(&ec.mood, "mood", "", "Primary mood label")
	addCmd.Flags().StringSliceVar(&ec.secondaryMoods, "secondary", nil, "Up to two secondary mood labels")
	addCmd.Flags().StringVar(&ec.tags, "tags", "", "Comma or semicolon separated tags")
	_ = addCmd.MarkFlagRequired("mood")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE:  ec.runList,
	}
	listCmd.Flags().StringVar(&ec.from, "from", "", "Range start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&ec.to, "to", "", "Range end date (YYYY-MM-DD)")

	cmd.AddCommand(addCmd)
	cmd.AddCommand(listCmd)

	return cmd
}

func (ec *EntriesCmd) service(cmd *cobra.Command) (journalsvc.Service, func(), error) {
	registry, err := config.NewRegistry(ec.profilesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load profiles from %q: %w", ec.profilesPath, err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ec.dbPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database %q: %w", ec.dbPath, err)
	}

	explorer := atlas.NewExplorer(registry, db)
	svc, err := explorer.GetJournalService(cmd.Context(), domain.Journal{Name: ec.journal})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("unknown journal %q: %w", ec.journal, err)
	}

	return svc, func() { db.Close() }, nil
}

func (ec *EntriesCmd) runAdd(cmd *cobra.Command, _ []string) error {
	var entryDate time.Time
	if ec.date != "" {
		parsed, err := time.Parse(flagDateLayout, ec.date)
		if err != nil {
			return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", ec.date)
		}
		entryDate = parsed
	}

	svc, cleanup, err := ec.service(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	entry, err := svc.AddEntry(cmd.Context(), journalsvc.CreateEntryInput{
		Date:           entryDate,
		Content:        ec.content,
		PrimaryMood:    ec.mood,
		SecondaryMoods: ec.secondaryMoods,
		Tags:           ec.tags,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "added entry %s for %s\n",
		entry.ID, entry.EntryDate.Format(flagDateLayout))
	return nil
}

func (ec *EntriesCmd) runList(cmd *cobra.Command, _ []string) error {
	window, err := parseWindow(ec.from, ec.to)
	if err != nil {
		return err
	}
	endTime := window.End
	if !endTime.IsZero() {
		endTime = endTime.AddDate(0, 0, 1)
	}

	svc, cleanup, err := ec.service(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	listed, err := svc.ListEntries(cmd.Context(), window.Start, endTime)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, entry := range listed {
		line := fmt.Sprintf("%s  %-12s", entry.EntryDate.Format(flagDateLayout), entry.PrimaryMood.Label)
		if len(entry.Tags) > 0 {
			line += "  [" + strings.Join(entry.Tags, ", ") + "]"
		}
		fmt.Fprintf(out, "%s  (%d words)\n", line, entry.WordCount)
	}
	return nil
}
