package scorer

import "strings"

func containsAny(response string, markers []string) bool {
	lowered := strings.ToLower(response)
	for _, marker := range markers {
		if strings.Contains(lowered, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

func matchFraction(response string, expected []string) float64 {
	if len(expected) == 0 {
		return 0
	}
	lowered := strings.ToLower(response)
	matched := 0
	for _, characteristic := range expected {
		if strings.Contains(lowered, strings.ToLower(characteristic)) {
			matched++
		}
	}
	return float64(matched) / float64(len(expected))
}
