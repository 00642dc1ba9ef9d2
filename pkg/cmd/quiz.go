package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/quiz"
)

var ErrAborted = errors.New("questionnaire aborted")

var quizMarket string

var QuizCmd = &cobra.Command{
	Use:   QuizCmdName,
	Short: QuizCmdShort,
	Long:  QuizCmdLong,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := dal.ParseMarket(quizMarket)
		if err != nil {
			return err
		}
		return runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), m)
	},
}

func init() {
	QuizCmd.Flags().StringVarP(&quizMarket, "market", "m", string(dal.DefaultMarket), "market: nl or de")
}

func runQuiz(in io.Reader, out io.Writer, m dal.Market) error {
	w, err := quiz.New(m)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)

	for !w.Done() {
		q := w.Current()
		_, label := w.Progress()
		fmt.Fprintf(out, "\n%s\n%s\n%s\n", label, q.Title, q.Subtitle)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s %s - %s\n", i+1, o.Icon, o.Text, o.Description)
		}
		fmt.Fprintf(out, "Choose 1-%d (b = back, q = quit): ", len(q.Options))

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return ErrAborted
		}

		switch input := strings.ToLower(strings.TrimSpace(scanner.Text())); input {
		case "b":
			w.Back()
		case "q":
			return ErrAborted
		default:
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Fprintf(out, "invalid choice %q\n", input)
				continue
			}
			if err := w.Select(q.Options[n-1].Value); err != nil {
				return err
			}
			if err := w.Next(); err != nil {
				return err
			}
		}
	}

	recs, err := w.Recommendations()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nYour best matches:\n")
	for _, r := range recs {
		fmt.Fprintf(out, "  %3d%% Match  %s (%s, %s, %s, %s/5)\n", r.Match, r.Name, r.Fuel, r.Type, r.Price, r.Rating)
	}
	return nil
}
