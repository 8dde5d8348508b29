package models

import "time"

type Roadmap struct {
	Topics        []string `json:"topics" bson:"topics" validate:"min=1,dive,required"`
	MiniProject   string   `json:"miniProject" bson:"miniProject" validate:"required"`
	Duration      string   `json:"duration" bson:"duration" validate:"required"`
	Certification string   `json:"certification" bson:"certification"`
}

type PlanItem struct {
	Skill     string  `json:"skill" bson:"skill" validate:"required"`
	Completed bool    `json:"completed" bson:"completed"`
	Roadmap   Roadmap `json:"roadmap" bson:"roadmap"`
}

type SkillGapResult struct {
	Role          string     `json:"role" bson:"role"`
	MissingSkills []string   `json:"missingSkills" bson:"missingSkills"`
	ClosurePlan   []PlanItem `json:"closurePlan" bson:"closurePlan"`
}

// skill_gaps 컬렉션 문서, (email, role) 기준 upsert
type SkillGapRecord struct {
	Email     string         `json:"email" bson:"email"`
	Role      string         `json:"role" bson:"role"`
	Result    SkillGapResult `json:"result" bson:"result"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}
