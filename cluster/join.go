package cluster

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cyrillicVowels are the Russian vowels in lower and upper case. A fragment
// boundary after a Cyrillic vowel usually separates whole words, while a
// boundary after a consonant usually splits one word across fragments.
const cyrillicVowels = "аеёиоуыэюяАЕЁИОУЫЭЮЯ"

// JoinText joins two text fragments using script-aware rules, producing
// better results than naive whitespace joining for hyphenated and
// agglutinative text flows:
//
//   - If either side is empty, the non-empty side wins.
//   - When both boundary characters are alphabetic, a space is inserted
//     only if the next fragment starts uppercase or the previous fragment
//     ends in a Cyrillic vowel; otherwise the fragments are treated as one
//     word split across extraction units and concatenated directly.
//   - A previous fragment ending in a space, hyphen, en dash, or em dash
//     is concatenated directly.
//   - Otherwise a single space is inserted.
func JoinText(prev, next string) string {
	if prev == "" {
		return next
	}
	next = strings.TrimLeftFunc(next, unicode.IsSpace)
	if next == "" {
		return prev
	}

	lastChar, _ := utf8.DecodeLastRuneInString(prev)
	firstChar, _ := utf8.DecodeRuneInString(next)

	if unicode.IsLetter(lastChar) && unicode.IsLetter(firstChar) {
		if unicode.IsUpper(firstChar) || strings.ContainsRune(cyrillicVowels, lastChar) {
			return prev + " " + next
		}
		return prev + next
	}

	switch lastChar {
	case ' ', '-', '—', '–':
		return prev + next
	}

	return prev + " " + next
}
