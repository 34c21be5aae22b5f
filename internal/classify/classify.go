// Package classify assigns domains, sub-domains, and technology tags to
// conference records from their name text.
//
// Classification is a keyword-count score over a fixed per-domain table. The
// table is an ordered slice, not a map: declaration order is the documented
// tie-break, so iteration must be deterministic.
package classify

import (
	"regexp"
	"sort"
	"strings"
)

// GeneralDomain is returned when no keyword matches.
const GeneralDomain = "general"

const (
	maxSubDomains = 3
	maxTags       = 5
)

type domainEntry struct {
	domain   string
	keywords []string
}

// domainTable scores each domain by substring hits. Order matters: the
// first-declared domain wins score ties, both for the primary domain and
// within the sub-domain list.
var domainTable = []domainEntry{
	{"ai", []string{
		"artificial intelligence", "intelligence", "machine learning", "deep learning",
		"neural", "nlp", "natural language", "computer vision", "ml",
		"data science", "llm", "generative ai", "gpt", "transformer",
	}},
	{"software", []string{
		"software engineering", "devops", "agile", "testing", "qa",
		"architecture", "microservices", "api", "backend", "developer",
	}},
	{"security", []string{
		"security", "cybersecurity", "hacking", "crypto", "privacy",
		"infosec", "penetration", "vulnerability", "bsides",
	}},
	{"web", []string{
		"javascript", "typescript", "react", "vue", "angular", "frontend",
		"web", "node", "css", "html", "browser",
	}},
	{"mobile", []string{
		"ios", "android", "swift", "kotlin", "mobile", "flutter", "react native",
		"droidcon",
	}},
	{"cloud", []string{
		"cloud", "kubernetes", "k8s", "docker", "container", "serverless",
		"aws", "azure", "gcp", "infrastructure", "platform engineering", "kubecon",
	}},
	{"data", []string{
		"database", "sql", "nosql", "postgres", "mysql", "mongodb",
		"data engineering", "analytics", "etl", "warehouse",
	}},
	{"devops", []string{
		"devops", "sre", "reliability", "monitoring", "observability",
		"ci/cd", "deployment", "gitops",
	}},
	{"opensource", []string{
		"open source", "oss", "linux", "foss", "apache", "cncf",
	}},
	{"academic", []string{
		"ieee", "acm", "symposium", "workshop", "icse", "issta",
		"conference on", "international conference",
	}},
}

// tagVocabulary is the fixed technology-term list for tag extraction.
// Matches are returned in this order, not input order.
var tagVocabulary = []string{
	"python", "javascript", "typescript", "java", "kotlin", "swift",
	"rust", "go", "golang", "ruby", "php", "scala", "elixir",
	"react", "vue", "angular", "svelte", "next.js", "nuxt",
	"kubernetes", "docker", "terraform", "ansible",
	"aws", "azure", "gcp", "cloudflare",
	"postgres", "mysql", "mongodb", "redis", "elasticsearch",
	"graphql", "rest", "grpc",
	"agile", "scrum", "kanban",
}

var tagPatterns = compileTagPatterns()

func compileTagPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(tagVocabulary))
	for i, tag := range tagVocabulary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(tag) + `\b`)
	}
	return patterns
}

// Classify scores the name plus joined tags against the domain table and
// returns the primary domain with up to three runner-up sub-domains in
// descending score order. Ties break by table declaration order. With no
// keyword hit at all the record is "general" with no sub-domains.
func Classify(name string, tags []string) (string, []string) {
	text := strings.ToLower(name + " " + strings.Join(tags, " "))

	type match struct {
		domain string
		score  int
		order  int
	}

	matches := make([]match, 0, len(domainTable))
	for i, entry := range domainTable {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, match{domain: entry.domain, score: score, order: i})
		}
	}

	if len(matches) == 0 {
		return GeneralDomain, nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].order < matches[j].order
	})

	subs := make([]string, 0, maxSubDomains)
	for _, m := range matches[1:] {
		if len(subs) == maxSubDomains {
			break
		}
		subs = append(subs, m.domain)
	}
	if len(subs) == 0 {
		subs = nil
	}

	return matches[0].domain, subs
}

// ExtractTags matches the technology vocabulary against the name and
// description with word-boundary matching and returns at most five tags in
// vocabulary order.
func ExtractTags(name, description string) []string {
	text := strings.ToLower(name + " " + description)

	var found []string
	for i, pattern := range tagPatterns {
		if pattern.MatchString(text) {
			found = append(found, tagVocabulary[i])
			if len(found) == maxTags {
				break
			}
		}
	}
	return found
}
