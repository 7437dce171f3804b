package wordle

import (
	"sort"

	game_constants "github.com/HenryKun55/multiwordle/constants/game"
	"github.com/HenryKun55/multiwordle/models"
	"github.com/samber/lo"
)

// Score rewards winners for every attempt they had left
func Score(attempts int, won bool) int {
	if !won {
		return 0
	}
	return (game_constants.MaxAttempts - attempts + 1) * game_constants.ScorePerRemainingAttempt
}

// Progress is the share of correct letters in the latest guess, 0 to 100
func Progress(guesses []models.Guess) int {
	if len(guesses) == 0 {
		return 0
	}
	last := guesses[len(guesses)-1]
	correct := lo.CountBy(last.Letters, func(l models.Letter) bool {
		return l.Status == models.LetterCorrect
	})
	return correct * 100 / game_constants.WordLength
}

// Less orders winners first (fewer attempts first), then everyone else by
// progress. Join order breaks ties.
func Less(a, b *models.Player) bool {
	aWon, bWon := a.Status == models.StatusWon, b.Status == models.StatusWon
	if aWon != bWon {
		return aWon
	}
	if aWon && a.Attempts != b.Attempts {
		return a.Attempts < b.Attempts
	}
	if !aWon {
		if pa, pb := Progress(a.Guesses), Progress(b.Guesses); pa != pb {
			return pa > pb
		}
	}
	return a.JoinSeq < b.JoinSeq
}

// Rank sorts players in place by Less
func Rank(players []*models.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return Less(players[i], players[j])
	})
}
