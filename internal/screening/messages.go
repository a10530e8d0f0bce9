package screening

import (
	"fmt"
	"strings"

	"github.com/spigell/talent-screener/internal/questionbank"
	"github.com/spigell/talent-screener/internal/resume"
)

var exitKeywords = map[string]bool{
	"exit": true, "quit": true, "bye": true, "goodbye": true,
	"end": true, "stop": true, "done": true, "q": true,
}

var skipWords = map[string]bool{
	"skip": true, "s": true, "no": true, "none": true, "pass": true,
}

var acknowledgements = [...]string{
	"Got it, thank you!",
	"Great response!",
	"Noted, moving on!",
	"Appreciate the detail!",
	"Perfect, next one!",
	"Thanks for sharing!",
	"Excellent answer!",
}

// fallbackQuestions are asked when neither the bank nor the writer produced anything.
var fallbackQuestions = [...]string{
	"Describe the most complex technical problem you've solved in your current role and your approach to debugging it.",
	"Walk me through a system you designed from scratch. What trade-offs did you make in the architecture?",
	"Tell me about a time your code caused a production issue. How did you identify and fix it?",
	"How do you approach performance optimisation in a system you're unfamiliar with?",
	"Describe how you've handled technical debt in a project you've worked on.",
}

const (
	greetingText = "Welcome to Talent Screener! I'll collect a few details, optionally review your résumé, " +
		"then ask technical questions tailored to your skill set.\n\n" +
		"It takes about 5-10 minutes. Type 'exit' anytime to leave.\n\n" +
		"Let's start: what's your full name?"
	goodbyeText       = "Thank you for chatting with Talent Screener! Best of luck!"
	resumeHintText    = "Please provide your résumé file (PDF, DOCX or plain text), or type 'skip'."
	resumeSkipText    = "No problem! Loading your technical questions..."
	scannedResumeText = "Your résumé appears to be image-based (scanned), so I couldn't extract text from it.\n\n" +
		"No worries, I'll use your declared tech stack for your technical questions instead!"
	unreadableResumeText = "Couldn't read that file, so I'll use your tech stack for questions instead."
	tooLargeResumeText   = "That file is too large. Please upload a smaller file, or type 'skip'."
	continueText         = "Please answer the current question to continue."
)

func invalidText(reason string) string {
	return reason + " Please try again."
}

// promptFor is what the assistant says on arriving at a collect stage.
func promptFor(stage Stage, p Profile) string {
	name := p.FirstName()
	switch stage {
	case CollectEmail:
		return fmt.Sprintf("Nice to meet you, %s! What's your email address?", name)
	case CollectPhone:
		return "Got it! What's your phone number? (include country code, e.g. +91)"
	case CollectExperience:
		return "Perfect! How many years of professional experience do you have?"
	case CollectPosition:
		return "Great! What role(s) are you targeting? (e.g. Backend Engineer, ML Engineer)"
	case CollectLocation:
		return "Excellent! What's your current city and country?"
	case CollectTechStack:
		return fmt.Sprintf("Almost there, %s! List your complete tech stack: programming languages, frameworks, "+
			"databases, cloud and DevOps tools.\n\n(e.g. Python, FastAPI, React, PostgreSQL, Docker, AWS)", name)
	case CollectResume:
		return fmt.Sprintf("Great work so far, %s! Would you like to share your résumé? "+
			"I'll scan it and ask about your projects, companies and experience.\n\n"+
			"Accepted: PDF, DOCX or plain text, up to 10 MB. Give the file path, or type 'skip' to continue without one.", name)
	default:
		return continueText
	}
}

func resumeSummaryText(name string, a *resume.Analysis) string {
	lines := []string{fmt.Sprintf("Résumé scanned, %s!", name)}
	if len(a.Companies) > 0 {
		lines = append(lines, "Companies: "+strings.Join(head(a.Companies, 3), ", "))
	}
	if a.Education != "" {
		lines = append(lines, "Education: "+a.Education)
	}
	if a.Experience != "" {
		lines = append(lines, "Experience: "+a.Experience)
	}
	if len(a.Skills) > 0 {
		lines = append(lines, "Skills found: "+strings.Join(head(a.Skills, 8), ", "))
	}
	if len(a.Projects) > 0 {
		lines = append(lines, "Projects: "+strings.Join(head(a.Projects, 3), ", "))
	}
	lines = append(lines, fmt.Sprintf("Ready with %d résumé questions plus tech questions. Let's go!", len(a.Questions)))
	return strings.Join(lines, "\n")
}

func readinessText(name string, questions []Question) string {
	var (
		techs []string
		seen  = make(map[string]bool)
		tier  questionbank.Tier
	)
	for _, q := range questions {
		if q.Origin != OriginBank {
			continue
		}
		if tier == "" {
			tier = q.Tier
		}
		if !seen[q.Tech] {
			seen[q.Tech] = true
			techs = append(techs, q.Tech)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ready, %s! Loaded %d technical questions", name, len(questions))
	if len(techs) > 0 {
		fmt.Fprintf(&b, " on: %s", strings.Join(techs, ", "))
	}
	switch tier {
	case questionbank.Fresher:
		b.WriteString(" (Fresher)")
	case questionbank.Experienced:
		b.WriteString(" (Experienced)")
	}
	b.WriteString(".\n\nTake your time and answer as fully as you like. Let's begin!")
	return b.String()
}

func questionText(index int, questions []Question) string {
	q := questions[index]
	total := len(questions)

	var header string
	switch {
	case q.Origin == OriginResume:
		header = fmt.Sprintf("Résumé Q%d of %d", index+1, total)
		if q.Source != "" {
			header += " · " + q.Source
		}
	case q.Tier == questionbank.Fresher:
		header = fmt.Sprintf("[Fresher] Q%d of %d · %s", index+1, total, q.Tech)
	case q.Tier == questionbank.Experienced:
		header = fmt.Sprintf("[Experienced] Q%d of %d · %s", index+1, total, q.Tech)
	default:
		header = fmt.Sprintf("Q%d of %d", index+1, total)
	}
	return header + "\n\n" + q.Text
}

func farewellText(p Profile, resumeAnalyzed bool) string {
	row := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return fmt.Sprintf("  %-11s %s", label+":", value)
	}

	lines := []string{
		fmt.Sprintf("Screening complete, %s! Well done.", p.FirstName()),
		"",
		"Your profile",
		row("Name", p.Name),
		row("Email", p.Email),
		row("Phone", p.Phone),
		row("Experience", p.Experience),
		row("Role", p.Position),
		row("Location", p.Location),
		row("Stack", p.TechStack),
	}
	if resumeAnalyzed {
		lines = append(lines, row("Résumé", "scanned"))
	}
	lines = append(lines, "",
		"Our team will review your responses within 3-5 business days.",
		"Thank you and best of luck!",
	)
	return strings.Join(lines, "\n")
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
