// Package morph contains small English inflection heuristics based on word
// endings. The functions expect a non-empty lowercase base form.
package morph

import (
	"strings"
)

const vowels = "aeiou"

// Pluralize returns the plural form of a noun.
func Pluralize(noun string) string {
	return sibilantSuffix(noun)
}

// ThirdPersonSingular returns the present third person singular of a verb.
func ThirdPersonSingular(verb string) string {
	return sibilantSuffix(verb)
}

// PastTense returns the simple past of a regular verb.
func PastTense(verb string) string {
	if strings.HasSuffix(verb, "e") {
		return verb + "d"
	}

	if consonantY(verb) {
		return verb[:len(verb)-1] + "ied"
	}

	return verb + "ed"
}

// sibilantSuffix is the shared rule of plural nouns and 3rd person verbs:
// city -> cities, box -> boxes, cat -> cats
func sibilantSuffix(w string) string {
	if consonantY(w) {
		return w[:len(w)-1] + "ies"
	}

	for _, suffix := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(w, suffix) {
			return w + "es"
		}
	}

	return w + "s"
}

// consonantY reports whether w ends in "y" preceded by a consonant.
func consonantY(w string) bool {
	if len(w) < 2 || !strings.HasSuffix(w, "y") {
		return false
	}

	return !strings.ContainsRune(vowels, rune(w[len(w)-2]))
}
