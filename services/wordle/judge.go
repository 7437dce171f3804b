package wordle

import "github.com/HenryKun55/multiwordle/models"

// Evaluate scores a guess against the target in two passes. Exact matches
// consume their target position first, then each remaining guess letter takes
// the leftmost unconsumed occurrence in the target, if any.
func Evaluate(guess, target string) models.Guess {
	g := []rune(Normalize(guess))
	t := []rune(Normalize(target))

	letters := make([]models.Letter, len(g))
	consumed := make([]bool, len(t))

	for i, r := range g {
		letters[i] = models.Letter{Char: string(r), Status: models.LetterAbsent}
		if i < len(t) && t[i] == r {
			letters[i].Status = models.LetterCorrect
			consumed[i] = true
		}
	}

	for i, r := range g {
		if letters[i].Status == models.LetterCorrect {
			continue
		}
		for j := range t {
			if !consumed[j] && t[j] == r {
				letters[i].Status = models.LetterPresent
				consumed[j] = true
				break
			}
		}
	}

	return models.Guess{Word: string(g), Letters: letters}
}

// IsWinning reports whether every letter of the guess is correct
func IsWinning(g models.Guess) bool {
	if len(g.Letters) == 0 {
		return false
	}
	for _, l := range g.Letters {
		if l.Status != models.LetterCorrect {
			return false
		}
	}
	return true
}
