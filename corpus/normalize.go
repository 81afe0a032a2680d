package corpus

import "strings"

// Corporate suffix tokens removed from company names at import time.
var corpStopwords = map[string]bool{
	"INC": true, "INCORPORATED": true, "CORP": true, "CORPORATION": true,
	"TECH": true, "TECHNOLOGY": true, "TECHNOLOGIES": true,
	"COMPANY": true, "CO": true, "GROUP": true, "HOLDINGS": true,
	"LIMITED": true, "LTD": true, "COMMUNICATIONS": true, "COMMUNICATION": true,
	"SYSTEMS": true, "PLC": true, "SA": true, "LLC": true, "COMMON": true,
	"STOCK": true, "SHARES": true,
}

// Multi-word share-class phrases removed before tokenization.
var classPhrases = []string{
	"CLASS A", "CLASS B", "CLASS C",
	"COMMON STOCK", "PREFERRED STOCK",
	"WARRANT", "WARRANTS",
}

// CleanCompanyName normalizes a raw company name from an exchange symbol
// directory: upper-cases, strips punctuation, removes share-class phrases
// and corporate suffix tokens, and collapses whitespace.
//
// "Apple Inc. - Common Stock" becomes "APPLE".
func CleanCompanyName(name string) string {
	upper := strings.ToUpper(name)

	// Replace everything outside A-Z, 0-9 and space with a space.
	var b strings.Builder
	b.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == ' ' {
			b.WriteByte(c)
		} else {
			b.WriteByte(' ')
		}
	}
	cleaned := b.String()

	for _, phrase := range classPhrases {
		cleaned = strings.ReplaceAll(cleaned, phrase, " ")
	}

	tokens := strings.Fields(cleaned)
	kept := tokens[:0]
	for _, token := range tokens {
		if !corpStopwords[token] {
			kept = append(kept, token)
		}
	}

	return strings.Join(kept, " ")
}
