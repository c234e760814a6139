package docinventory

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RE2 treats only ASCII as word characters, so word boundaries are checked in
// isWholeWord and word classes are spelled out with Unicode categories.
var (
	sensorRe = regexp.MustCompile(`(?i)(?:ICM|MPU|BMI|BMM|BNO|RM|IST|HMC|QMC)\p{Nd}+[A-Z]?|MS5611|DPS310|BMP\p{Nd}+|ICP20100`)
	mcuRe    = regexp.MustCompile(`(?i)STM32[HF]\p{Nd}{3}[A-Z]?|F\p{Nd}{3}(?:[\p{L}\p{N}_]{2,3})?|H7\p{Nd}{2}`)

	// Bare family references such as "F4" or "F7" name no specific part.
	genericMCURe = regexp.MustCompile(`^F\p{Nd}$`)
)

// Normalize canonicalizes a raw token into a stable identifier: non-breaking
// spaces and newlines become spaces, whitespace runs collapse to a single
// space, the ends are trimmed and the result is upper-cased.
func Normalize(raw string) string {
	raw = strings.ReplaceAll(raw, "\u00a0", " ")
	raw = strings.ReplaceAll(raw, "\n", " ")
	return strings.ToUpper(strings.Join(strings.Fields(raw), " "))
}

// Scan returns the sensor and MCU identifiers found in text.
// Both sets are non-nil and hold normalized identifiers.
func Scan(text string) (sensors, mcus Set) {
	sensors = NewSet()
	for _, m := range findWords(sensorRe, text) {
		sensors.Add(Normalize(m))
	}

	mcus = NewSet()
	for _, m := range findWords(mcuRe, text) {
		id := Normalize(m)
		if isGenericMCU(id) {
			continue
		}
		mcus.Add(id)
	}
	return sensors, mcus
}

func isGenericMCU(id string) bool {
	return utf8.RuneCountInString(id) <= 2 || genericMCURe.MatchString(id) || id == "ALL"
}

// findWords returns the matches of re in text that are not directly preceded
// or followed by a word character.
func findWords(re *regexp.Regexp, text string) []string {
	var words []string
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if isWholeWord(text, loc[0], loc[1]) {
			words = append(words, text[loc[0]:loc[1]])
		}
	}
	return words
}

func isWholeWord(text string, start, end int) bool {
	if r, n := utf8.DecodeLastRuneInString(text[:start]); n > 0 && isWordRune(r) {
		return false
	}
	if r, n := utf8.DecodeRuneInString(text[end:]); n > 0 && isWordRune(r) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
