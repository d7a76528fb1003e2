package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/murajaa/murajaa/internal/screens"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past reviews",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		results, err := e.history.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No reviews yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tSELECTION\tSCORE\t%")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%d%%\n",
				r.ID, screens.FormatDate(r.Date), screens.DescribeSelection(r),
				r.Score, r.TotalQuestions, r.Percentage())
		}
		return w.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the questions of one review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		r, ok, err := e.history.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no review with id %q", args[0])
		}

		fmt.Printf("%s  %s  %d/%d (%d%%)\n\n",
			screens.FormatDate(r.Date), screens.DescribeSelection(r), r.Score, r.TotalQuestions, r.Percentage())
		for i, qr := range r.Results {
			mark := "✗"
			if qr.IsCorrect {
				mark = "✓"
			}
			q := qr.Question
			fmt.Printf("%s %2d. %-8s %s %d → %d\n", mark, i+1, q.Type,
				q.ReferenceAyah.Surah.EnglishName, q.ReferenceAyah.NumberInSurah, q.TargetAyah.NumberInSurah)
			fmt.Printf("      %s\n      %s\n", q.ReferenceAyah.Text, q.TargetAyah.Text)
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.history.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all reviews",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes every stored review; rerun with --yes to confirm")
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.history.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyClearCmd.Flags().Bool("yes", false, "Confirm deleting all reviews")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}
