package extract

import "strings"

// StrategyText gathers the substantial paragraphs of the document (over 50
// characters after trimming) as the narrative excerpt for the AI strategy
// check, one paragraph per line.
func StrategyText(paragraphs []string) string {
	var sb strings.Builder
	for _, p := range paragraphs {
		if t := strings.TrimSpace(p); len(t) > 50 {
			sb.WriteString(t)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
