package interview

import "strings"

type Question struct {
	Text     string
	Keywords []string
}

const DefaultRole = "developer"

// 부분 문자열 매칭 시 이 순서대로 검사
var roleOrder = []string{"developer", "python", "frontend", "backend", "sql", "hr"}

var questionBank = map[string][]Question{
	"developer": {
		{Text: "Explain REST API.", Keywords: []string{"http", "get", "post", "client", "server"}},
		{Text: "What is the difference between TCP and UDP?", Keywords: []string{"connection", "reliable", "speed", "packet"}},
		{Text: "Explain the concept of threading.", Keywords: []string{"process", "parallel", "concurrency", "cpu"}},
	},
	"python": {
		{Text: "Explain list vs tuple.", Keywords: []string{"mutable", "immutable", "change", "fast"}},
		{Text: "What is a decorator?", Keywords: []string{"function", "wrap", "modify", "behavior"}},
		{Text: "How is memory managed in Python?", Keywords: []string{"heap", "garbage", "collection", "private"}},
	},
	"frontend": {
		{Text: "What is Virtual DOM?", Keywords: []string{"dom", "copy", "diff", "update", "performance"}},
		{Text: "Explain closure in JavaScript.", Keywords: []string{"function", "scope", "outer", "access"}},
		{Text: "What is the box model?", Keywords: []string{"margin", "border", "padding", "content"}},
	},
	"backend": {
		{Text: "What is middleware?", Keywords: []string{"request", "response", "pipeline", "function"}},
		{Text: "Horizontal vs Vertical scaling?", Keywords: []string{"add", "machines", "power", "resource"}},
		{Text: "SQL vs NoSQL?", Keywords: []string{"relational", "schema", "document", "table"}},
	},
	"sql": {
		{Text: "What is normalization?", Keywords: []string{"redundancy", "organized", "table", "data"}},
		{Text: "Explain ACID properties.", Keywords: []string{"atomicity", "consistency", "isolation", "durability"}},
		{Text: "Left Join vs Inner Join?", Keywords: []string{"match", "all", "rows", "common"}},
	},
	"hr": {
		{Text: "Tell me about yourself.", Keywords: []string{"experience", "bio", "background", "passionate"}},
		{Text: "What are your strengths?", Keywords: []string{"fast", "learner", "team", "detail"}},
		{Text: "Why do you want to join us?", Keywords: []string{"company", "values", "growth", "challenge"}},
	},
}

// ResolveRole maps free-form input to a bank key: exact key, then the first key
// contained in the input, else DefaultRole.
func ResolveRole(role string) string {
	role = strings.ToLower(role)
	if _, ok := questionBank[role]; ok {
		return role
	}
	for _, key := range roleOrder {
		if strings.Contains(role, key) {
			return key
		}
	}
	return DefaultRole
}

func Questions(role string) ([]Question, bool) {
	qs, ok := questionBank[role]
	return qs, ok
}

// Score grades an answer by the share of keywords it mentions.
func Score(keywords []string, answer string) int {
	answer = strings.ToLower(answer)
	pct := 0.0
	if len(keywords) > 0 {
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(answer, kw) {
				matched++
			}
		}
		pct = float64(matched) / float64(len(keywords))
	}
	switch {
	case pct >= 0.6:
		return 10
	case pct >= 0.3:
		return 6
	default:
		return 3
	}
}
