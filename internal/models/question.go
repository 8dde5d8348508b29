package models

import "time"

// 객관식 문제, 생성 모델 출력도 이 형태로 검증한다
type MCQ struct {
	Question string   `json:"question" bson:"question" validate:"required"`
	Answer   string   `json:"answer" bson:"answer" validate:"required"`
	Options  []string `json:"options" bson:"options" validate:"min=2,dive,required"`
}

// role_questions 컬렉션 문서. role은 항상 정규화된 키
type RoleQuestion struct {
	Role string    `json:"role" bson:"role"`
	MCQ  `bson:",inline"`
	Date time.Time `json:"date" bson:"date"`
}

// smart_questions 컬렉션 문서. role은 입력 그대로 저장
type SmartQuestion struct {
	Role       string    `json:"role" bson:"role"`
	Difficulty string    `json:"difficulty" bson:"difficulty"`
	Question   string    `json:"question" bson:"question"`
	Date       time.Time `json:"date" bson:"date"`
}

// assessment_results 컬렉션 문서
type AssessmentResult struct {
	Email   string    `json:"email" bson:"email"`
	Summary any       `json:"summary" bson:"summary"`
	Date    time.Time `json:"date" bson:"date"`
}
