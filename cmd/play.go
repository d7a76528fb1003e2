package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/murajaa/murajaa/internal/app"
	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/screens/selection"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a review without going through the menus",
	Example: "  murajaa play --juz 30\n" +
		"  murajaa play --surah 2 --from 255 --to 257 --count 3",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectionFromFlags(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if count <= 0 {
			count = e.cfg.Quiz.DefaultCount
		}
		if err := quiz.ValidateCount(count); err != nil {
			return err
		}

		deps := e.deps()
		start := selection.NewWithSelection(deps, sel, count)
		return app.Run(app.New(app.Options{Deps: deps, Start: start}))
	},
}

func selectionFromFlags(cmd *cobra.Command) (quiz.Selection, error) {
	juz, _ := cmd.Flags().GetInt("juz")
	surah, _ := cmd.Flags().GetInt("surah")
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")

	var sel quiz.Selection
	switch {
	case juz != 0 && surah != 0:
		return sel, errors.New("use either --juz or --surah, not both")
	case juz != 0:
		if from != 0 || to != 0 {
			return sel, errors.New("--from and --to only apply to --surah")
		}
		sel = quiz.JuzSelection(juz)
	case surah != 0:
		if from == 0 && to != 0 {
			from = 1
		}
		sel = quiz.SurahSelection(surah, from, to)
	default:
		return sel, errors.New("one of --juz or --surah is required")
	}
	return sel, sel.Validate()
}

func init() {
	playCmd.Flags().Int("juz", 0, "Juz to review (1-30)")
	playCmd.Flags().Int("surah", 0, "Surah to review (1-114)")
	playCmd.Flags().Int("from", 0, "First ayah of the surah range")
	playCmd.Flags().Int("to", 0, "Last ayah of the surah range (default: end of surah)")
	playCmd.Flags().Int("count", 0, "Number of questions (default from config)")
}
