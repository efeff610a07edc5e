package rules

import "unicode/utf8"

func PassResult(name string) StatusContext {
	return StatusContext{Name: name, Status: StatusOf(StatusPass)}
}

func FailResult(name string) StatusContext {
	return StatusContext{Name: name, Status: StatusOf(StatusFail)}
}

func SkipResult(name string) StatusContext {
	return StatusContext{Name: name, Status: StatusOf(StatusSkip)}
}

// NameWidth is the display width used for column alignment.
func NameWidth(name string) int {
	return utf8.RuneCountInString(name)
}

// LongestName returns the widest rule name across results.
func LongestName(results []StatusContext) int {
	longest := 0
	for _, r := range results {
		if w := NameWidth(r.Name); w > longest {
			longest = w
		}
	}
	return longest
}

// SplitResults separates results that failed from the ones that passed or were
// skipped. Anything that is not exactly FAIL, including an unset status, lands
// in passedOrSkipped. Input order is preserved in both lists.
func SplitResults(results []StatusContext) (failed, passedOrSkipped []StatusContext) {
	for _, r := range results {
		if r.Status != nil && *r.Status == StatusFail {
			failed = append(failed, r)
			continue
		}
		passedOrSkipped = append(passedOrSkipped, r)
	}
	return failed, passedOrSkipped
}
