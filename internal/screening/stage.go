package screening

import "fmt"

// Stage is one step of the fixed screening dialogue.
type Stage int

const (
	Greeting Stage = iota
	CollectName
	CollectEmail
	CollectPhone
	CollectExperience
	CollectPosition
	CollectLocation
	CollectTechStack
	CollectResume
	GenerateQuestions
	AskQuestions
	Farewell
)

var stageNames = [...]string{
	Greeting:          "greeting",
	CollectName:       "collect_name",
	CollectEmail:      "collect_email",
	CollectPhone:      "collect_phone",
	CollectExperience: "collect_experience",
	CollectPosition:   "collect_position",
	CollectLocation:   "collect_location",
	CollectTechStack:  "collect_tech_stack",
	CollectResume:     "collect_resume",
	GenerateQuestions: "generate_questions",
	AskQuestions:      "ask_questions",
	Farewell:          "farewell",
}

// Stages lists every stage in dialogue order.
func Stages() []Stage {
	out := make([]Stage, 0, len(stageNames))
	for s := Greeting; s <= Farewell; s++ {
		out = append(out, s)
	}
	return out
}

func (s Stage) String() string {
	if s < Greeting || s > Farewell {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// ParseStage is the inverse of String.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q", name)
}

// transitions lists the stages each stage may move to. The résumé upload and skip
// branches both land on GenerateQuestions, so every stage has exactly one successor.
var transitions = map[Stage][]Stage{
	Greeting:          {CollectName},
	CollectName:       {CollectEmail},
	CollectEmail:      {CollectPhone},
	CollectPhone:      {CollectExperience},
	CollectExperience: {CollectPosition},
	CollectPosition:   {CollectLocation},
	CollectLocation:   {CollectTechStack},
	CollectTechStack:  {CollectResume},
	CollectResume:     {GenerateQuestions},
	GenerateQuestions: {AskQuestions},
	AskQuestions:      {Farewell},
	Farewell:          nil,
}

// CanMoveTo reports whether next is a legal successor of s.
func (s Stage) CanMoveTo(next Stage) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Next returns the single successor of s, or false for the terminal stage.
func (s Stage) Next() (Stage, bool) {
	next := transitions[s]
	if len(next) == 0 {
		return s, false
	}
	return next[0], true
}

// IsCollect reports whether s gathers a validated profile field.
func (s Stage) IsCollect() bool {
	_, ok := profileFields[s]
	return ok
}

var placeholders = map[Stage]string{
	CollectName:       "e.g.  Aarav Sharma",
	CollectEmail:      "e.g.  aarav@example.com",
	CollectPhone:      "e.g.  +91 98765 43210",
	CollectExperience: "e.g.  3 years  or  5+",
	CollectPosition:   "e.g.  Backend Engineer, ML Engineer",
	CollectLocation:   "e.g.  Bengaluru, India",
	CollectTechStack:  "e.g.  Python, FastAPI, React, PostgreSQL, Docker",
	CollectResume:     "Path to your résumé, or 'skip' to proceed without one",
	AskQuestions:      "Type your answer here",
}

// Placeholder returns the input hint shown while waiting at stage.
func Placeholder(stage Stage) string {
	if p, ok := placeholders[stage]; ok {
		return p
	}
	return "Type your message"
}
