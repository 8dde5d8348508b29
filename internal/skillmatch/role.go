package skillmatch

import "strings"

// NormalizeRole maps a free-text role to the key used by the multiple-choice
// question bank and role_questions collection. First keyword wins.
//
// Open-ended interview questions deliberately do not go through this and keep
// the raw role, so the two question stores use different keys for the same role.
func NormalizeRole(raw string) string {
	r := strings.ToLower(raw)
	switch {
	case strings.Contains(r, "front"):
		return "frontend"
	case strings.Contains(r, "back"):
		return "backend"
	case strings.Contains(r, "data"):
		return "data science"
	case strings.Contains(r, "ai"), strings.Contains(r, "ml"):
		return "ai/ml"
	case strings.Contains(r, "python"):
		return "python"
	case strings.Contains(r, "devops"):
		return "devops"
	}
	return strings.TrimSpace(r)
}
