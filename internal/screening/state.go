package screening

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/spigell/talent-screener/internal/questionbank"
	"github.com/spigell/talent-screener/internal/resume"
	"github.com/spigell/talent-screener/internal/validate"
)

// Role tells the presentation layer who produced a message.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Message is one plain-text transcript entry.
type Message struct {
	Role Role
	Text string
}

// Profile holds the collected candidate fields. Each field is written once.
type Profile struct {
	Name       string
	Email      string
	Phone      string
	Experience string
	Position   string
	Location   string
	TechStack  string
}

// FirstName is the first word of the name, or "there" before one is known.
func (p Profile) FirstName() string {
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return fields[0]
	}
	return "there"
}

type profileField struct {
	name     string
	validate validate.Func
	value    func(*Profile) *string
}

var profileFields = map[Stage]profileField{
	CollectName:       {"name", validate.Name, func(p *Profile) *string { return &p.Name }},
	CollectEmail:      {"email", validate.Email, func(p *Profile) *string { return &p.Email }},
	CollectPhone:      {"phone", validate.Phone, func(p *Profile) *string { return &p.Phone }},
	CollectExperience: {"experience", validate.Experience, func(p *Profile) *string { return &p.Experience }},
	CollectPosition:   {"position", validate.Position, func(p *Profile) *string { return &p.Position }},
	CollectLocation:   {"location", validate.Location, func(p *Profile) *string { return &p.Location }},
	CollectTechStack:  {"tech_stack", validate.TechStack, func(p *Profile) *string { return &p.TechStack }},
}

func (p *Profile) set(field profileField, value string) error {
	target := field.value(p)
	if *target != "" {
		return fmt.Errorf("profile field %s already set", field.name)
	}
	*target = value
	return nil
}

// Origin records which question source produced a session question.
type Origin string

const (
	OriginResume   Origin = "resume"
	OriginBank     Origin = "bank"
	OriginAI       Origin = "ai"
	OriginFallback Origin = "fallback"
)

// Question is one entry of the session's question list.
type Question struct {
	Text   string
	Origin Origin
	// Tier and Tech are set for bank questions.
	Tier questionbank.Tier
	Tech string
	// Source is the résumé excerpt a résumé question refers to.
	Source string
}

// Answer pairs a question with the raw reply.
type Answer struct {
	Question string
	Text     string
}

// Upload is a file submitted at the résumé stage.
type Upload struct {
	Name      string
	MediaType string
	Data      []byte
}

// State is everything one screening session knows. Callers hold one per session
// and pass it back to the Controller on every input.
type State struct {
	ID         string
	Stage      Stage
	Transcript []Message
	Profile    Profile

	// Resume is nil when the upload was skipped or yielded no text.
	Resume          *resume.Analysis
	ResumeSkipped   bool
	ResumeProcessed bool

	Questions []Question
	Answers   []Answer
	Cursor    int

	Ended bool
	Saved bool
}

func newState() *State {
	return &State{
		ID:    uuid.NewString(),
		Stage: Greeting,
	}
}

func (s *State) say(text string) Message {
	msg := Message{Role: RoleAssistant, Text: text}
	s.Transcript = append(s.Transcript, msg)
	return msg
}

func (s *State) heard(text string) {
	s.Transcript = append(s.Transcript, Message{Role: RoleUser, Text: text})
}

func (s *State) moveTo(next Stage) error {
	if !s.Stage.CanMoveTo(next) {
		return fmt.Errorf("illegal transition %s -> %s", s.Stage, next)
	}
	s.Stage = next
	return nil
}
