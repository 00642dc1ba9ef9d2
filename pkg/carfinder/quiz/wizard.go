// Package quiz walks a user through a market questionnaire one step at a time.
package quiz

import (
	"errors"
	"fmt"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/recommend"
)

var (
	ErrInvalidOption = errors.New("invalid option")
	ErrIncomplete    = errors.New("current question is not answered")
	ErrFinished      = errors.New("questionnaire finished")
)

// Wizard is a linear questionnaire. It is not safe for concurrent use.
type Wizard struct {
	market    dal.Market
	questions []dal.Question
	step      int
	answers   recommend.Answers
	done      bool
}

// New returns a wizard positioned on the first question of market m.
func New(m dal.Market) (*Wizard, error) {
	qs, err := dal.Questions(m)
	if err != nil {
		return nil, err
	}
	w := &Wizard{market: m, questions: qs}
	w.Start()
	return w, nil
}

// Start resets the wizard to the first question and forgets all answers.
func (w *Wizard) Start() {
	w.step = 0
	w.answers = recommend.Answers{}
	w.done = false
}

// Market returns the market the questionnaire belongs to.
func (w *Wizard) Market() dal.Market { return w.market }

// Step returns the zero-based index of the current question.
func (w *Wizard) Step() int { return w.step }

// Len returns the number of questions.
func (w *Wizard) Len() int { return len(w.questions) }

// Current returns the question being asked.
func (w *Wizard) Current() dal.Question { return w.questions[w.step] }

// Selected returns the answer given for the current question, if any.
func (w *Wizard) Selected() (string, bool) {
	v, ok := w.answers[w.step]
	return v, ok
}

// Select records value as the answer to the current question, replacing any
// earlier answer.
func (w *Wizard) Select(value string) error {
	if w.done {
		return ErrFinished
	}
	if !w.Current().HasOption(value) {
		return fmt.Errorf("%w: %q for question %d", ErrInvalidOption, value, w.step)
	}
	w.answers[w.step] = value
	return nil
}

// Next advances to the following question. On the last question it finishes
// the questionnaire instead.
func (w *Wizard) Next() error {
	if w.done {
		return ErrFinished
	}
	if _, ok := w.answers[w.step]; !ok {
		return ErrIncomplete
	}
	if w.step == len(w.questions)-1 {
		w.done = true
		return nil
	}
	w.step++
	return nil
}

// Back returns to the previous question. It is a no-op on the first one.
func (w *Wizard) Back() {
	if w.done {
		w.done = false
		return
	}
	if w.step > 0 {
		w.step--
	}
}

// IsLast reports whether the current question is the final one.
func (w *Wizard) IsLast() bool { return w.step == len(w.questions)-1 }

// Done reports whether every question was answered and confirmed.
func (w *Wizard) Done() bool { return w.done }

// Progress returns the completion of the questionnaire in percent and as a
// "Step n of N" label.
func (w *Wizard) Progress() (int, string) {
	n := len(w.questions)
	percent := (w.step + 1) * 100 / n
	return percent, fmt.Sprintf("Step %d of %d", w.step+1, n)
}

// Answers returns a copy of the answers given so far.
func (w *Wizard) Answers() recommend.Answers {
	out := make(recommend.Answers, len(w.answers))
	for k, v := range w.answers {
		out[k] = v
	}
	return out
}

// Recommendations scores the market catalog against the answers.
func (w *Wizard) Recommendations() ([]recommend.Recommendation, error) {
	return recommend.Recommend(w.market, w.answers)
}
