package resume

import (
	"fmt"
	"strings"
)

const (
	maxQuestions       = 5
	maxProjectQuestion = 2
	maxTitleLen        = 45
)

// Category tags where a résumé question came from.
type Category string

const (
	CategoryProject    Category = "project"
	CategoryExperience Category = "experience"
	CategoryTechnical  Category = "technical"
)

// Question is a personalised question built from résumé findings.
type Question struct {
	Text     string
	Category Category
	// Source is the excerpt the question refers to: a project title, employer, or skill.
	Source string
}

// GenerateQuestions builds up to five questions: projects first, then employers, then skills.
func GenerateQuestions(skills, projects, companies []string) []Question {
	questions := make([]Question, 0, maxQuestions)

	for i, project := range projects {
		if i == maxProjectQuestion {
			break
		}
		title := shortTitle(project)
		questions = append(questions, Question{
			Text:     fmt.Sprintf("Your résumé mentions %s. Walk me through the most challenging part of building it and what you'd do differently now.", title),
			Category: CategoryProject,
			Source:   title,
		})
	}

	if len(companies) > 0 {
		questions = append(questions, Question{
			Text:     fmt.Sprintf("At %s, what was the most technically complex problem you solved, and what was your approach?", companies[0]),
			Category: CategoryExperience,
			Source:   companies[0],
		})
	}

	if len(companies) >= 2 {
		first, second := companies[0], companies[1]
		questions = append(questions, Question{
			Text:     fmt.Sprintf("You've worked at both %s and %s. What was the biggest technical or architectural difference between the two environments?", first, second),
			Category: CategoryExperience,
			Source:   first + " / " + second,
		})
	}

	used := make(map[string]bool)
	for _, skill := range skills {
		if len(questions) >= maxQuestions {
			break
		}
		if used[skill] {
			continue
		}
		used[skill] = true

		text := strings.ReplaceAll(genericSkillTemplate, "{tech}", skill)
		if pool := skillTemplates[skill]; len(pool) > 0 {
			text = pool[len(questions)%len(pool)]
		}
		questions = append(questions, Question{Text: text, Category: CategoryTechnical, Source: skill})
	}

	return dedupe(questions)
}

func dedupe(questions []Question) []Question {
	seen := make(map[string]bool, len(questions))
	final := make([]Question, 0, len(questions))
	for _, q := range questions {
		if seen[q.Text] {
			continue
		}
		seen[q.Text] = true
		final = append(final, q)
		if len(final) == maxQuestions {
			break
		}
	}
	return final
}

func shortTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}
	return string(runes[:maxTitleLen-3]) + "…"
}
