package models

import "time"

type Project struct {
	Title       string   `json:"title" bson:"title" validate:"required"`
	Description string   `json:"description" bson:"description" validate:"required"`
	TechStack   []string `json:"techStack" bson:"techStack"`
	Difficulty  string   `json:"difficulty" bson:"difficulty"`
}

// generated_projects 컬렉션 문서
type GeneratedProjects struct {
	Email    string    `json:"email" bson:"email"`
	Role     string    `json:"role" bson:"role"`
	Projects []Project `json:"projects" bson:"projects"`
	Date     time.Time `json:"date" bson:"date"`
}

// 커리어 쇼크 알림 (해고 뉴스, 채용 동향)
type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
	Date    string `json:"date,omitempty"`
	Count   *int   `json:"count,omitempty"`
}
