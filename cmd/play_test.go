package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murajaa/murajaa/internal/quiz"
)

func flagsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{}
	c.Flags().Int("juz", 0, "")
	c.Flags().Int("surah", 0, "")
	c.Flags().Int("from", 0, "")
	c.Flags().Int("to", 0, "")
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestSelectionFromFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    quiz.Selection
		wantErr string
	}{
		{"juz", []string{"--juz", "30"}, quiz.JuzSelection(30), ""},
		{"whole surah", []string{"--surah", "18"}, quiz.SurahSelection(18, 0, 0), ""},
		{"surah range", []string{"--surah", "2", "--from", "255", "--to", "257"}, quiz.SurahSelection(2, 255, 257), ""},
		{"open-ended range", []string{"--surah", "2", "--from", "280"}, quiz.SurahSelection(2, 280, 0), ""},
		{"end only", []string{"--surah", "2", "--to", "5"}, quiz.SurahSelection(2, 1, 5), ""},
		{"neither", nil, quiz.Selection{}, "one of --juz or --surah is required"},
		{"both", []string{"--juz", "1", "--surah", "1"}, quiz.Selection{}, "not both"},
		{"range on juz", []string{"--juz", "1", "--from", "3"}, quiz.Selection{}, "only apply to --surah"},
		{"juz out of bounds", []string{"--juz", "31"}, quiz.JuzSelection(31), "juz must be between 1 and 30"},
		{"reversed range", []string{"--surah", "2", "--from", "9", "--to", "3"}, quiz.SurahSelection(2, 9, 3), "before start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := selectionFromFlags(flagsCmd(t, tt.args...))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel)
		})
	}
}
