package models

import "time"

// 회원 사용자 모델, profile은 클라이언트가 자유롭게 채우는 맵
type User struct {
	ID           string         `json:"id" bson:"-"`
	Name         string         `json:"name" bson:"name"`
	Email        string         `json:"email" bson:"email"`
	PasswordHash string         `json:"-" bson:"password"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at"`
	Profile      map[string]any `json:"profile" bson:"profile"`
}

// 토큰 발급 응답에 포함되는 공개 사용자 정보
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
