package models

import "time"

type ReadinessResult struct {
	ReadinessScore      float64  `json:"readiness_score" bson:"readiness_score"`
	PeerPercentile      float64  `json:"peer_percentile" bson:"peer_percentile"`
	RequiredSkillsCount int      `json:"required_skills_count" bson:"required_skills_count"`
	MatchedSkillsCount  int      `json:"matched_skills_count" bson:"matched_skills_count"`
	RequiredSkills      []string `json:"required_skills" bson:"required_skills"`
	MatchedSkills       []string `json:"matched_skills" bson:"matched_skills"`
}

// readiness_scans 컬렉션 문서
type ReadinessScan struct {
	Email          string          `json:"email" bson:"email"`
	JobDescription string          `json:"job_description" bson:"job_description"`
	Result         ReadinessResult `json:"result" bson:"result"`
	ResumeKey      string          `json:"resume_key,omitempty" bson:"resume_key,omitempty"`
	Date           time.Time       `json:"date" bson:"date"`
}

type FailureResult struct {
	Diagnosis  string   `json:"diagnosis" bson:"diagnosis"`
	Type       string   `json:"type" bson:"type"`
	Sentiment  string   `json:"sentiment" bson:"sentiment"`
	ActionPlan []string `json:"actionPlan" bson:"actionPlan"`
}

// failure_stories 컬렉션 문서
type FailureStory struct {
	Email  string        `json:"email" bson:"email"`
	Story  string        `json:"story" bson:"story"`
	Result FailureResult `json:"result" bson:"result"`
	Date   time.Time     `json:"date" bson:"date"`
}
