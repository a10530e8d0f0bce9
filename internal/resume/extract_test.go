package resume

import (
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
jane@example.com | github.com/jane
Summary
Backend engineer with 6+ years of experience building Python and Docker services.
Experience
Senior Engineer at Acme Corp, Bengaluru
Globex Inc | Backend Developer | 2018 - 2021
Projects
Realtime Chat Platform
- Built with FastAPI and Redis
Inventory Forecasting Engine
Chat Platform
Education
B.Tech in Computer Science, IIT Delhi
Skills
Python, Docker, Kubernetes, PostgreSQL`

func TestAnalyzeSampleResume(t *testing.T) {
	a := Analyze(sampleResume)

	if a.Text != sampleResume {
		t.Fatalf("expected raw text to be kept")
	}

	wantCompanies := []string{"Acme Corp", "Globex Inc"}
	if !reflect.DeepEqual(a.Companies, wantCompanies) {
		t.Fatalf("unexpected companies: %v", a.Companies)
	}

	wantProjects := []string{"Realtime Chat Platform", "Inventory Forecasting Engine"}
	if !reflect.DeepEqual(a.Projects, wantProjects) {
		t.Fatalf("unexpected projects: %v", a.Projects)
	}

	if a.Education != "B.Tech in Computer Science, IIT Delhi" {
		t.Fatalf("unexpected education: %q", a.Education)
	}

	if a.Experience != "6 years" {
		t.Fatalf("unexpected experience: %q", a.Experience)
	}

	for _, skill := range []string{"Python", "Docker", "Kubernetes", "SQL"} {
		if !contains(a.Skills, skill) {
			t.Fatalf("expected skill %s in %v", skill, a.Skills)
		}
	}

	if len(a.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(a.Questions))
	}
	if a.Questions[0].Category != CategoryProject || a.Questions[0].Source != "Realtime Chat Platform" {
		t.Fatalf("unexpected first question: %+v", a.Questions[0])
	}
	if a.Questions[3].Source != "Acme Corp / Globex Inc" {
		t.Fatalf("expected company comparison as fourth question, got %+v", a.Questions[3])
	}
}

func TestExtractSkillsFollowsTableOrder(t *testing.T) {
	got := ExtractSkills("Worked with Kubernetes daily, mostly in Golang.")
	want := []string{"Go", "Kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractCompanies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "case-insensitive dedupe",
			text: "Engineer at Acme, NY\nLead at ACME, SF",
			want: []string{"Acme"},
		},
		{
			name: "skips date segment",
			text: "2019 - 2021 | Initech | Developer",
			want: []string{"Initech"},
		},
		{
			name: "pipe line without year is ignored",
			text: "Initech | Developer",
			want: []string{},
		},
		{
			name: "lowercase segments are ignored",
			text: "initech | developer | 2020",
			want: []string{},
		},
		{
			name: "capped at five",
			text: strings.Join([]string{
				"Dev at Alpha, X", "Dev at Bravo, X", "Dev at Charlie, X",
				"Dev at Delta, X", "Dev at Echo, X", "Dev at Foxtrot, X",
			}, "\n"),
			want: []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractCompanies(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestExtractProjectsSectionScope(t *testing.T) {
	text := strings.Join([]string{
		"Distributed Cache Layer",
		"PROJECTS",
		"Distributed Cache Layer",
		"• Implemented consistent hashing",
		"Short",
		"Payments Gateway 2022",
		"Portfolio at www.example.dev",
		"Key achievements:",
		"Search Indexing Service",
		"Recommendation Engine",
		"Image Tagging Pipeline",
		"Fraud Scoring Service",
		"Skills",
		"Outside Section Project",
	}, "\n")

	got := ExtractProjects(text)
	want := []string{"Distributed Cache Layer", "Search Indexing Service", "Recommendation Engine", "Image Tagging Pipeline"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractExperienceFallsBackToYearSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "explicit years", text: "Over 4 yrs exp in backend", want: "4 years"},
		{name: "decimal years", text: "2.5 years of experience", want: "2.5 years"},
		{name: "year span", text: "Acme 2015\nGlobex 2021", want: "~6 years"},
		{name: "single year", text: "Acme 2015 - 2015", want: ""},
		{name: "span too wide", text: "Started 2000, still here 2035", want: ""},
		{name: "nothing", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractExperience(tt.text); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractEducationTruncates(t *testing.T) {
	line := "Master of Science " + strings.Repeat("x", 150)
	got := ExtractEducation("Intro\n" + line)
	if len([]rune(got)) != maxEducationLen {
		t.Fatalf("expected %d characters, got %d", maxEducationLen, len([]rune(got)))
	}
	if ExtractEducation("no degree here") != "" {
		t.Fatalf("expected empty education")
	}
}

func TestAnalyzeToleratesEmptyInput(t *testing.T) {
	a := Analyze("")
	if len(a.Skills) != 0 || len(a.Companies) != 0 || len(a.Projects) != 0 || len(a.Questions) != 0 {
		t.Fatalf("expected empty findings, got %+v", a)
	}
	if a.Education != "" || a.Experience != "" {
		t.Fatalf("expected empty strings, got %+v", a)
	}
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
