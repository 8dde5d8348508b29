// Package failure diagnoses a free-text career setback story with fixed
// keyword rules and maps each diagnosis to a canned action plan.
package failure

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/depu2006/CareerGenomeai/internal/models"
)

const MinStoryLength = 10

var ErrStoryTooShort = errors.New("story too short")

type rule struct {
	keywords   []string
	diagnosis  string
	actionPlan []string
}

var (
	interviewWords = []string{"interview", "call", "meeting", "hr", "screen", "round", "coding", "whiteboard", "live", "assessment", "test", "challenge", "explained", "nervous", "froze", "anxiety"}
	resumeWords    = []string{"resume", "cv", "application", "applied", "ats", "apply", "submitted"}
	marketWords    = []string{"ghosted", "no reply", "ignored", "silence", "reject", "callbacks", "response"}
	skillWords     = []string{"skill", "stack", "learn", "experience", "qualified", "requirements", "knowledge"}
	negativeWords  = []string{"depressed", "sad", "hate", "quit", "useless", "stupid"}
	positiveWords  = []string{"hope", "learn", "better", "next", "improve"}
)

// checked in order, first match wins
var interviewRules = []rule{
	{
		keywords:  []string{"nervous", "anxiety", "froze", "scared", "blank", "panic", "shaking"},
		diagnosis: "Performance Anxiety / Nerves",
		actionPlan: []string{
			"Practice 'Mock Interviews' to desensitize the fear response.",
			"Use breathing techniques (4-7-8 method) before checking in.",
			"Focus on 'thinking out loud' even if you are stuck, rather than staying silent.",
		},
	},
	{
		keywords:  []string{"code", "coding", "technical", "system design", "whiteboard", "algorithm", "datastructure", "live", "syntax"},
		diagnosis: "Technical Proficiency Gap",
		actionPlan: []string{
			"Practice 1 LeetCode Medium problem daily under a timer.",
			"Review 'System Design' concepts (Scalability, CAP Theorem).",
			"Do a mock technical interview on Pramp or with a peer.",
		},
	},
	{
		diagnosis: "Communication / Behavioral Gap",
		actionPlan: []string{
			"Prepare 5 'STAR' method stories (Situation, Task, Action, Result).",
			"Research the company's core values to align your answers.",
			"Practice speaking slowly and clearly using the Pyramid Principle.",
		},
	},
}

var resumeRules = []rule{
	{
		keywords:  []string{"content", "short", "empty"},
		diagnosis: "Lack of Resume Depth",
		actionPlan: []string{
			"Expand your resume to at least 500 words.",
			"Use the 'XYZ' formula for bullet points (Accomplished [X] as measured by [Y] doing [Z]).",
			"Run your resume through an ATS scanner.",
		},
	},
	{
		diagnosis: "Resume Optimization Issue",
		actionPlan: []string{
			"Quantify your achievements with metrics (%, $, time saved).",
			"Tailor keywords to the specific job description.",
			"Ensure your formatting is ATS-friendly (single column, standard fonts).",
		},
	},
}

var marketRule = rule{
	diagnosis: "Low Response Rate / Market Fit",
	actionPlan: []string{
		"Reach out directly to hiring managers on LinkedIn/Email.",
		"Apply within the first 24 hours of a job posting.",
		"Get a referral from an employee (boosts chances by 10x).",
	},
}

var skillGapRule = rule{
	diagnosis: "Perceived Skill or Experience Gap",
	actionPlan: []string{
		"Build a portfolio project using the required tech stack.",
		"Contribute to Open Source to prove real-world skills.",
		"Obtain a certification to validate your knowledge.",
	},
}

var generalRule = rule{
	diagnosis:  "General Career Setback",
	actionPlan: []string{"Reflect on your career goals.", "Network with peers in your industry."},
}

// Keywords are plain substrings, so "hr" also matches inside "three".
func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func firstMatch(text string, rules []rule) rule {
	for _, r := range rules {
		if len(r.keywords) == 0 || containsAny(text, r.keywords) {
			return r
		}
	}
	return generalRule
}

func Classify(story string) (models.FailureResult, error) {
	if utf8.RuneCountInString(story) < MinStoryLength {
		return models.FailureResult{}, ErrStoryTooShort
	}
	text := strings.ToLower(story)

	failureType, picked := "General", generalRule
	switch {
	case containsAny(text, interviewWords):
		failureType, picked = "Interview", firstMatch(text, interviewRules)
	case containsAny(text, resumeWords):
		failureType, picked = "Resume", firstMatch(text, resumeRules)
	case containsAny(text, marketWords):
		failureType, picked = "Market", marketRule
	case containsAny(text, skillWords):
		failureType, picked = "Skill Gap", skillGapRule
	}

	sentiment := "Neutral"
	switch {
	case containsAny(text, negativeWords):
		sentiment = "Negative"
	case containsAny(text, positiveWords):
		sentiment = "Positive"
	}

	return models.FailureResult{
		Diagnosis:  picked.diagnosis,
		Type:       failureType,
		Sentiment:  sentiment,
		ActionPlan: append([]string(nil), picked.actionPlan...),
	}, nil
}
