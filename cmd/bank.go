package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talent-screener/internal/questionbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "List the technologies in the question bank",
	Run: func(cmd *cobra.Command, _ []string) {
		aliases, _ := cmd.Flags().GetBool("aliases")
		listBank(aliases)
	},
}

func init() {
	rootCmd.AddCommand(bankCmd)

	bankCmd.Flags().Bool("aliases", false, "print the alias table instead of pool sizes")
}

func listBank(aliases bool) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	bank, err := loadBank(config.Questions)
	if err != nil {
		logger.Fatal("loading question bank", zap.Error(err))
	}

	if aliases {
		err = printAliases(os.Stdout, bank)
	} else {
		err = printBank(os.Stdout, bank)
	}
	if err != nil {
		logger.Fatal("printing question bank", zap.Error(err))
	}
}

func printBank(out io.Writer, bank *questionbank.Bank) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TECHNOLOGY\tFRESHER\tEXPERIENCED")
	for _, key := range bank.Keys() {
		fresher, experienced, _ := bank.Counts(key)
		fmt.Fprintf(w, "%s\t%d\t%d\n", key, fresher, experienced)
	}
	return w.Flush()
}

func printAliases(out io.Writer, bank *questionbank.Bank) error {
	table := bank.Aliases()
	names := make([]string, 0, len(table))
	for alias := range table {
		names = append(names, alias)
	}
	slices.Sort(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALIAS\tTECHNOLOGY")
	for _, alias := range names {
		fmt.Fprintf(w, "%s\t%s\n", alias, table[alias])
	}
	return w.Flush()
}
