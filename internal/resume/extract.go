// Package resume scans résumé text for skills, employers, projects, education and experience
// signals and turns those findings into personalised interview questions.
package resume

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxCompanies    = 5
	maxProjects     = 4
	maxEducationLen = 100
)

// Analysis is the structured result of scanning one uploaded résumé.
type Analysis struct {
	Text       string
	Skills     []string
	Companies  []string
	Projects   []string
	Education  string
	Experience string
	Questions  []Question
}

var (
	atCompanyRe      = regexp.MustCompile(`\bat\s+([A-Z][A-Za-z0-9\s&.\-]{2,35})\s*[|,]`)
	yearRe           = regexp.MustCompile(`20\d{2}`)
	yearWordRe       = regexp.MustCompile(`\b(20\d{2})\b`)
	fourDigitsRe     = regexp.MustCompile(`\d{4}`)
	projectsHeaderRe = regexp.MustCompile(`(?i)^projects?\s*$`)
	otherHeaderRe    = regexp.MustCompile(`(?i)^(?:experience|work experience|education|skills|certifications?|achievements?|summary|objective|contact|profile)\s*$`)
	bulletRe         = regexp.MustCompile(`^[-•*▪◦]\s*`)
	contactRe        = regexp.MustCompile(`@|http|www`)
	experienceRe     = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*\+?\s*(?:years?|yrs?)(?:\s+of)?\s*(?:experience|exp)?`)
)

// Analyze runs every extractor over text and generates the résumé questions.
// It never fails; empty or garbled input yields empty findings.
func Analyze(text string) *Analysis {
	a := &Analysis{
		Text:       text,
		Skills:     ExtractSkills(text),
		Companies:  ExtractCompanies(text),
		Projects:   ExtractProjects(text),
		Education:  ExtractEducation(text),
		Experience: ExtractExperience(text),
	}
	a.Questions = GenerateQuestions(a.Skills, a.Projects, a.Companies)
	return a
}

// ExtractSkills returns canonical group names whose synonyms occur anywhere in text.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, group := range techGroups {
		for _, synonym := range group.synonyms {
			if strings.Contains(lower, synonym) {
				found = append(found, group.name)
				break
			}
		}
	}
	return found
}

// ExtractCompanies looks for "Role at Company," lines and "Company | Role | 2020" lines.
func ExtractCompanies(text string) []string {
	companies := make([]string, 0)
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if m := atCompanyRe.FindStringSubmatch(stripped); m != nil {
			name := strings.TrimSpace(m[1])
			key := strings.ToLower(name)
			if !seen[key] && utf8.RuneCountInString(name) > 2 {
				seen[key] = true
				companies = append(companies, name)
				continue
			}
		}

		if !yearRe.MatchString(stripped) || !strings.Contains(stripped, "|") {
			continue
		}

		parts := strings.Split(stripped, "|")
		if len(parts) > 2 {
			parts = parts[:2]
		}
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if looksLikeCompany(part) && !seen[strings.ToLower(part)] {
				seen[strings.ToLower(part)] = true
				companies = append(companies, part)
				break
			}
		}
	}

	if len(companies) > maxCompanies {
		companies = companies[:maxCompanies]
	}
	return companies
}

func looksLikeCompany(part string) bool {
	n := utf8.RuneCountInString(part)
	if n <= 2 || n >= 40 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(part)
	if !unicode.IsUpper(first) {
		return false
	}
	return !fourDigitsRe.MatchString(part)
}

// ExtractProjects returns short title lines found inside the Projects section.
func ExtractProjects(text string) []string {
	projects := make([]string, 0)
	inProjects := false

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		switch {
		case projectsHeaderRe.MatchString(stripped):
			inProjects = true
			continue
		case otherHeaderRe.MatchString(stripped):
			inProjects = false
			continue
		}

		if !inProjects || bulletRe.MatchString(stripped) {
			continue
		}

		n := utf8.RuneCountInString(stripped)
		if n <= 10 || n >= 60 {
			continue
		}
		if yearRe.MatchString(stripped) || contactRe.MatchString(stripped) || strings.HasSuffix(stripped, ":") {
			continue
		}
		if nearDuplicate(projects, stripped) {
			continue
		}
		projects = append(projects, stripped)
	}

	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}
	return projects
}

func nearDuplicate(existing []string, candidate string) bool {
	c := strings.ToLower(candidate)
	for _, p := range existing {
		p = strings.ToLower(p)
		if strings.Contains(c, p) || strings.Contains(p, c) {
			return true
		}
	}
	return false
}

// ExtractEducation returns the first line naming a degree, capped at 100 characters.
func ExtractEducation(text string) string {
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if utf8.RuneCountInString(stripped) <= 5 {
			continue
		}
		lower := strings.ToLower(stripped)
		for _, degree := range degreeKeywords {
			if strings.Contains(lower, degree) {
				return truncateRunes(stripped, maxEducationLen)
			}
		}
	}
	return ""
}

// ExtractExperience prefers an explicit "N years" phrase and falls back to the span of years mentioned.
func ExtractExperience(text string) string {
	if m := experienceRe.FindStringSubmatch(text); m != nil {
		return m[1] + " years"
	}

	unique := make(map[int]struct{})
	for _, m := range yearWordRe.FindAllStringSubmatch(text, -1) {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		unique[year] = struct{}{}
	}
	if len(unique) < 2 {
		return ""
	}

	years := make([]int, 0, len(unique))
	for y := range unique {
		years = append(years, y)
	}
	sort.Ints(years)

	span := years[len(years)-1] - years[0]
	if span < 1 || span > 30 {
		return ""
	}
	return fmt.Sprintf("~%d years", span)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
