// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package argument

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case transforms a slug before it is looked up.
type Case string

const (
	CaseNone    Case = "none"
	CaseLower   Case = "lower"
	CaseUpper   Case = "upper"
	CaseUcfirst Case = "ucfirst"
	CaseUcwords Case = "ucwords"
)

var caseModes = []string{
	string(CaseNone), string(CaseLower), string(CaseUpper), string(CaseUcfirst), string(CaseUcwords),
}

// Apply returns s transformed according to the mode. Unknown modes leave s unchanged.
func (mode Case) Apply(s string) string {
	switch mode {
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseUcwords:
		return cases.Title(language.Und, cases.NoLower).String(s)
	case CaseUcfirst:
		first, size := utf8.DecodeRuneInString(s)
		if first == utf8.RuneError {
			return s
		}
		return cases.Upper(language.Und).String(string(first)) + s[size:]
	default:
		return s
	}
}
