package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/source"
)

func TestRunQuiz(t *testing.T) {
	// city, electric, compact, mid, eco, parking
	in := strings.NewReader("1\n1\n1\n2\n1\n1\n")
	var out bytes.Buffer

	require.NoError(t, runQuiz(in, &out, dal.MarketNL))

	text := out.String()
	assert.Contains(t, text, "Step 1 of 6")
	assert.Contains(t, text, "Step 6 of 6")
	assert.Contains(t, text, "Your best matches:")
	assert.Contains(t, text, " 75% Match  Nissan Leaf")
}

func TestRunQuiz_BackAndInvalidInput(t *testing.T) {
	// highway, back, city, an invalid pick, then the rest
	in := strings.NewReader("3\nb\n1\n9\nfoo\n1\n1\n2\n1\n1\n")
	var out bytes.Buffer

	require.NoError(t, runQuiz(in, &out, dal.MarketNL))

	text := out.String()
	assert.Contains(t, text, `invalid choice "9"`)
	assert.Contains(t, text, `invalid choice "foo"`)
	assert.Contains(t, text, " 75% Match  Nissan Leaf")
}

func TestRunQuiz_Aborted(t *testing.T) {
	var out bytes.Buffer

	err := runQuiz(strings.NewReader("1\nq\n"), &out, dal.MarketDE)
	assert.ErrorIs(t, err, ErrAborted)

	err = runQuiz(strings.NewReader("1\n"), &out, dal.MarketDE)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestNewRegistry(t *testing.T) {
	mock := newRegistry(configForMode("mock"), nopLogger())
	assert.Len(t, mock, len(dal.Markets()))

	live := newRegistry(configForMode("scrape"), nopLogger())
	require.IsType(t, source.Multi{}, live[dal.MarketNL])
	nl := live[dal.MarketNL].(source.Multi)
	require.Len(t, nl, 2)
	assert.Equal(t, "Marktplaats", nl[0].Name())
	assert.Equal(t, "mobile.de", nl[1].Name())
	require.Contains(t, live, dal.MarketDE)
	assert.Equal(t, "mobile.de", live[dal.MarketDE].Name())
}
