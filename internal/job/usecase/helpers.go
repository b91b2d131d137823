package usecase

import (
	"strconv"
	"strings"
)

// clientCode derives a short code from a client name: the first three
// letters of the first word, uppercased. "Sky TV" becomes "SKY",
// "One NZ Marketing" becomes "ONE". Names shorter than three letters
// use what there is.
func clientCode(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	runes := []rune(words[0])
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// jobNumberLess orders job numbers like "SKY 007" by client prefix
// then numeric suffix, so "SKY 9" sorts before "SKY 10". Numbers that
// do not split cleanly fall back to plain string order.
func jobNumberLess(a, b string) bool {
	aPrefix, aNum, aOK := splitJobNumber(a)
	bPrefix, bNum, bOK := splitJobNumber(b)
	if aOK && bOK {
		if aPrefix != bPrefix {
			return aPrefix < bPrefix
		}
		return aNum < bNum
	}
	return a < b
}

func splitJobNumber(jobNumber string) (prefix string, num int, ok bool) {
	idx := strings.LastIndex(jobNumber, " ")
	if idx == -1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(jobNumber[idx+1:])
	if err != nil {
		return "", 0, false
	}
	return jobNumber[:idx], n, true
}
