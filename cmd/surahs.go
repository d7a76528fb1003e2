package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var surahsCmd = &cobra.Command{
	Use:   "surahs",
	Short: "List the surahs with their ayah counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.API.Timeout)
		defer cancel()

		list, err := e.client.FetchSurahList(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tMEANING\tAYAT\tREVELATION")
		for _, s := range list {
			fmt.Fprintf(w, "%d\t%s (%s)\t%s\t%d\t%s\n",
				s.Number, s.EnglishName, s.Name, s.EnglishNameTranslation, s.NumberOfAyahs, s.RevelationType)
		}
		return w.Flush()
	},
}
