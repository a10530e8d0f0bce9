package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talent-screener/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print stored screening summaries, most recent first",
	Run: func(cmd *cobra.Command, _ []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		history(limit)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "n", 10, "how many records to print, 0 prints all")
}

func history(limit int) {
	ctx := context.Background()
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	store, err := storage.Open(config.Storage, logger)
	if err != nil {
		logger.Fatal("opening storage", zap.Error(err))
	}
	defer store.Close()

	records, err := store.List(ctx)
	if err != nil {
		logger.Fatal("listing records", zap.Error(err))
	}

	logger.Debug("loaded screening records", zap.Int("count", len(records)))

	if err := printHistory(os.Stdout, records, limit); err != nil {
		logger.Fatal("printing records", zap.Error(err))
	}
}

func printHistory(out io.Writer, records []storage.Record, limit int) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "no screenings recorded yet")
		return err
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME (UTC)\tNAME\tEMAIL\tPOSITION\tEXPERIENCE\tSTACK\tQUESTIONS\tCOMPLETE\tRÉSUMÉ")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			rec.Timestamp.UTC().Format(time.DateTime),
			rec.Name,
			rec.Email,
			rec.Position,
			rec.Experience,
			strings.Join(strings.Fields(rec.TechStack), " "),
			rec.QuestionsAsked,
			yesNo(rec.ScreeningComplete),
			yesNo(rec.ResumeAnalyzed),
		)
	}
	return w.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
