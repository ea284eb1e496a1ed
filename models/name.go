package models

import (
	"strings"
	"unicode"
)

// Honorific lead tokens that belong with the first name rather than
// standing alone.
var honorifics = map[string]bool{
	"md":    true,
	"mohd":  true,
	"md.":   true,
	"mohd.": true,
}

// SplitName breaks a full name into first, middle and last parts.
// Two tokens split first/last, three split first/middle/last. For four or
// more, the last token is the last name and an honorific lead token keeps
// the following token glued to the first name ("Md Abdul Karim Mollah" →
// "Md Abdul", "Karim", "Mollah"). All parts come back title-cased.
func SplitName(fullName string) (firstName string, middleName string, lastName string) {
	tokens := strings.Fields(fullName)

	switch len(tokens) {
	case 0:
		return "", "", ""
	case 1:
		return titleCase(tokens[0]), "", ""
	case 2:
		return titleCase(tokens[0]), "", titleCase(tokens[1])
	case 3:
		return titleCase(tokens[0]), titleCase(tokens[1]), titleCase(tokens[2])
	}

	last := tokens[len(tokens)-1]
	if honorifics[strings.ToLower(tokens[0])] {
		first := tokens[0] + " " + tokens[1]
		middle := strings.Join(tokens[2:len(tokens)-1], " ")
		return titleCase(first), titleCase(middle), titleCase(last)
	}

	middle := strings.Join(tokens[1:len(tokens)-1], " ")
	return titleCase(tokens[0]), titleCase(middle), titleCase(last)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
