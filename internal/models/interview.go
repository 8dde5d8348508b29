package models

import "time"

// interviews 컬렉션 문서, 아바타 면접 세션 완료 시 1회 저장
type InterviewRecord struct {
	Role       string    `json:"role" bson:"role"`
	Scores     []int     `json:"scores" bson:"scores"`
	TotalScore int       `json:"total_score" bson:"total_score"`
	Email      string    `json:"email,omitempty" bson:"email,omitempty"`
	Date       time.Time `json:"date" bson:"date"`
}
