package game_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/random/randomtest"
	"github.com/robalobadob/wordle-solver/internal/words"
)

const (
	hit     = game.CorrectPlacement
	present = game.CorrectLetter
	miss    = game.IncorrectLetter
)

func marks(r game.GuessResult) []game.Mark {
	out := make([]game.Mark, len(r))
	for i, lr := range r {
		out[i] = lr.Mark
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   []game.Mark
	}{
		{"repeated correct letter picks first", "slate", "salad", []game.Mark{hit, present, present, miss, miss}},
		{"all incorrect", "would", "crate", []game.Mark{miss, miss, miss, miss, miss}},
		{"all correct placement", "slate", "slate", []game.Mark{hit, hit, hit, hit, hit}},
		{"all correct letter", "tares", "stare", []game.Mark{present, present, present, present, present}},
		{"correct placement captures letters", "lllll", "hello", []game.Mark{miss, miss, hit, hit, miss}},
		{"correct placement and correct letter", "llzll", "hello", []game.Mark{present, miss, miss, hit, miss}},
		{"anagram with shared tail", "trace", "crate", []game.Mark{present, hit, hit, present, hit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := game.Score(tt.guess, tt.secret)
			require.Len(t, got, len(tt.guess))
			assert.Equal(t, tt.want, marks(got))
			assert.Equal(t, tt.guess, got.Word())
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	a := game.Score("crane", "nacre")
	b := game.Score("crane", "nacre")
	assert.Equal(t, a, b)
}

func TestScoreIdentityOverDictionary(t *testing.T) {
	dict, err := words.Default(words.DefaultLength)
	require.NoError(t, err)
	for _, w := range dict.Words() {
		r := game.Score(w, w)
		require.Len(t, r, len(w))
		require.True(t, r.Solved(), w)
	}
}

func TestScoreLengthMismatchKeepsGuessLength(t *testing.T) {
	r := game.Score("abcdef", "abc")
	require.Len(t, r, 6)
	assert.Equal(t, []game.Mark{hit, hit, hit, miss, miss, miss}, marks(r))
}

func TestOutcomeTerminal(t *testing.T) {
	assert.False(t, game.Playing.Terminal())
	assert.True(t, game.Win.Terminal())
	assert.True(t, game.Loss.Terminal())
}

type GameSuite struct {
	suite.Suite
	dict *words.Dictionary
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func (s *GameSuite) SetupTest() {
	s.dict = words.MustNew([]string{"crate", "would", "trace", "slate", "salad", "hello", "plant"}, 5)
}

func (s *GameSuite) TestNewRejectsSecretOutsideDictionary() {
	g, err := game.New(s.dict, "zzzzz")
	s.Nil(g)
	s.ErrorIs(err, game.ErrInvalidSecret)
}

func (s *GameSuite) TestNewStartsPlayingWithEmptyHistory() {
	g, err := game.New(s.dict, "crate")
	s.Require().NoError(err)
	st := g.State()
	s.Equal(game.Playing, st.Outcome)
	s.Empty(st.History)
	s.Equal(game.DefaultMaxGuesses, st.MaxGuesses)
	s.Equal(game.DefaultMaxGuesses, st.Remaining)
	s.Equal(5, st.WordLength)
	s.NotEmpty(g.ID)
}

func (s *GameSuite) TestNewRandomUsesSource() {
	// sorted: crate hello plant salad slate trace would
	rnd := randomtest.NewQueue(3)
	g, err := game.NewRandom(s.dict, rnd)
	s.Require().NoError(err)
	s.Equal("salad", g.Secret())
	s.Equal([]int{s.dict.Len()}, rnd.Calls)
}

func (s *GameSuite) TestEndToEndScenario() {
	dict := words.MustNew([]string{"crate", "would", "trace"}, 5)
	g, err := game.New(dict, "crate")
	s.Require().NoError(err)

	r, err := g.SubmitGuess("would")
	s.Require().NoError(err)
	s.Equal([]game.Mark{miss, miss, miss, miss, miss}, marks(r))
	s.Equal(game.Playing, g.Outcome())

	r, err = g.SubmitGuess("trace")
	s.Require().NoError(err)
	s.Equal([]game.Mark{present, hit, hit, present, hit}, marks(r))
	s.Equal(game.Playing, g.Outcome())

	r, err = g.SubmitGuess("crate")
	s.Require().NoError(err)
	s.True(r.Solved())
	s.Equal(game.Win, g.Outcome())
	s.Len(g.State().History, 3)
}

func (s *GameSuite) TestUnknownWordDoesNotConsumeGuess() {
	g, _ := game.New(s.dict, "crate")
	_, err := g.SubmitGuess("qwert")
	s.ErrorIs(err, game.ErrUnknownWord)
	s.Empty(g.State().History)
	s.Equal(game.Playing, g.Outcome())
}

func (s *GameSuite) TestGuessIsNormalized() {
	g, _ := game.New(s.dict, "crate")
	r, err := g.SubmitGuess("  CRATE ")
	s.Require().NoError(err)
	s.Equal("crate", r.Word())
	s.Equal(game.Win, g.Outcome())
}

func (s *GameSuite) TestBudgetEnforcement() {
	g, _ := game.New(s.dict, "crate", game.WithMaxGuesses(3))
	for i := 0; i < 3; i++ {
		s.Equal(game.Playing, g.Outcome())
		_, err := g.SubmitGuess("hello")
		s.Require().NoError(err)
	}
	s.Equal(game.Loss, g.Outcome())
	s.Equal(0, g.State().Remaining)

	_, err := g.SubmitGuess("crate")
	s.ErrorIs(err, game.ErrGuessBudgetExhausted)
	s.Len(g.State().History, 3)
	s.Equal(game.Loss, g.Outcome())
}

func (s *GameSuite) TestWinOnLastGuessIsWin() {
	g, _ := game.New(s.dict, "crate", game.WithMaxGuesses(2))
	_, _ = g.SubmitGuess("hello")
	_, err := g.SubmitGuess("crate")
	s.Require().NoError(err)
	s.Equal(game.Win, g.Outcome())
}

func (s *GameSuite) TestWinIsTerminal() {
	g, _ := game.New(s.dict, "crate")
	_, _ = g.SubmitGuess("crate")
	_, err := g.SubmitGuess("hello")
	s.ErrorIs(err, game.ErrAlreadySolved)
	s.Len(g.State().History, 1)
	s.Equal(game.Win, g.Outcome())
}

func (s *GameSuite) TestOutcomeExclusivity() {
	g, _ := game.New(s.dict, "plant", game.WithMaxGuesses(4))
	for _, w := range []string{"crate", "hello", "salad", "would", "plant"} {
		_, err := g.SubmitGuess(w)
		if err != nil {
			s.True(errors.Is(err, game.ErrGuessBudgetExhausted))
		}
		st := g.State()
		won, lost, playing := st.Outcome == game.Win, st.Outcome == game.Loss, st.Outcome == game.Playing
		count := 0
		for _, b := range []bool{won, lost, playing} {
			if b {
				count++
			}
		}
		s.Equal(1, count)
	}
	s.Equal(game.Loss, g.Outcome())
}

func (s *GameSuite) TestStateIsACopy() {
	g, _ := game.New(s.dict, "crate")
	_, _ = g.SubmitGuess("trace")
	st := g.State()
	st.History[0][0].Mark = hit
	st.History = append(st.History, game.GuessResult{})
	fresh := g.State()
	s.Len(fresh.History, 1)
	s.Equal(present, fresh.History[0][0].Mark)
	s.Equal("trace", fresh.Last().Word())
}
