/**
* Name: 			refdata.go
* Description: 		O*NET 형식 참조 데이터(TSV) 로더
* Workflow: 		시작 시 3개 테이블 로드, 실패한 테이블은 빈 테이블로 대체, 이후 읽기 전용
 */

package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	SkillsFile      = "Skills.txt"
	OccupationsFile = "Occupation Data.txt"
	TechSkillsFile  = "Technology Skills.txt"

	importanceScale = "IM"
)

type Skill struct {
	Name       string
	Importance float64
}

type Occupation struct {
	Code  string
	Title string
}

// Tables holds the loaded reference data. Empty tables mean "no matches".
type Tables struct {
	Skills      []Skill
	Occupations []Occupation
	// O*NET-SOC Code -> Example 목록 (파일 순서 유지, 중복 제거)
	TechSkills map[string][]string
}

func Load(dir string, log *zap.Logger) *Tables {
	t := &Tables{TechSkills: map[string][]string{}}

	if skills, err := loadSkills(filepath.Join(dir, SkillsFile)); err != nil {
		log.Warn("skill table unavailable, using empty table", zap.Error(err))
	} else {
		t.Skills = skills
		log.Info("loaded skill table", zap.Int("skills", len(skills)))
	}

	if occ, err := loadOccupations(filepath.Join(dir, OccupationsFile)); err != nil {
		log.Warn("occupation table unavailable, using empty table", zap.Error(err))
	} else {
		t.Occupations = occ
		log.Info("loaded occupation table", zap.Int("occupations", len(occ)))
	}

	if tech, err := loadTechSkills(filepath.Join(dir, TechSkillsFile)); err != nil {
		log.Warn("technology skill table unavailable, using empty table", zap.Error(err))
	} else {
		t.TechSkills = tech
		log.Info("loaded technology skill table", zap.Int("occupations", len(tech)))
	}
	return t
}

// header 이름(앞뒤 공백 제거) -> 열 인덱스
type table struct {
	cols map[string]int
	rows [][]string
}

func (tb table) get(row []string, col string) string {
	i, ok := tb.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func readTSV(path string, required ...string) (table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return table{}, fmt.Errorf("%s: read header: %w", filepath.Base(path), err)
	}
	tb := table{cols: make(map[string]int, len(header))}
	for i, h := range header {
		tb.cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range required {
		if _, ok := tb.cols[col]; !ok {
			return table{}, fmt.Errorf("%s: missing column %q", filepath.Base(path), col)
		}
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return table{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		tb.rows = append(tb.rows, row)
	}
	return tb, nil
}

// Scale ID == "IM" 행만 사용, 같은 스킬 이름은 평균, 이름순 정렬
func loadSkills(path string) ([]Skill, error) {
	tb, err := readTSV(path, "Scale ID", "Element Name", "Data Value")
	if err != nil {
		return nil, err
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, row := range tb.rows {
		if tb.get(row, "Scale ID") != importanceScale {
			continue
		}
		name := tb.get(row, "Element Name")
		if name == "" {
			continue
		}
		v, err := strconv.ParseFloat(tb.get(row, "Data Value"), 64)
		if err != nil {
			continue
		}
		sums[name] += v
		counts[name]++
	}

	skills := make([]Skill, 0, len(sums))
	for name, sum := range sums {
		skills = append(skills, Skill{Name: name, Importance: sum / float64(counts[name])})
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

func loadOccupations(path string) ([]Occupation, error) {
	tb, err := readTSV(path, "O*NET-SOC Code", "Title")
	if err != nil {
		return nil, err
	}
	out := make([]Occupation, 0, len(tb.rows))
	for _, row := range tb.rows {
		out = append(out, Occupation{Code: tb.get(row, "O*NET-SOC Code"), Title: tb.get(row, "Title")})
	}
	return out, nil
}

func loadTechSkills(path string) (map[string][]string, error) {
	tb, err := readTSV(path, "O*NET-SOC Code", "Example")
	if err != nil {
		return nil, err
	}
	out := map[string][]string{}
	seen := map[string]map[string]bool{}
	for _, row := range tb.rows {
		code, example := tb.get(row, "O*NET-SOC Code"), tb.get(row, "Example")
		if code == "" || example == "" {
			continue
		}
		if seen[code] == nil {
			seen[code] = map[string]bool{}
		}
		if seen[code][example] {
			continue
		}
		seen[code][example] = true
		out[code] = append(out[code], example)
	}
	return out, nil
}

func (t *Tables) SkillNames() []string {
	names := make([]string, len(t.Skills))
	for i, s := range t.Skills {
		names[i] = s.Name
	}
	return names
}

// 중복 제거 후 정렬된 직업명 목록
func (t *Tables) Titles() []string {
	seen := map[string]bool{}
	titles := []string{}
	for _, o := range t.Occupations {
		if o.Title == "" || seen[o.Title] {
			continue
		}
		seen[o.Title] = true
		titles = append(titles, o.Title)
	}
	sort.Strings(titles)
	return titles
}

func (t *Tables) OccupationByTitle(title string) (Occupation, bool) {
	for _, o := range t.Occupations {
		if o.Title == title {
			return o, true
		}
	}
	return Occupation{}, false
}

// 대소문자 무시 부분 문자열 검색, 파일 순서상 첫 번째 결과
func (t *Tables) OccupationContaining(role string) (Occupation, bool) {
	needle := strings.ToLower(role)
	if needle == "" {
		return Occupation{}, false
	}
	for _, o := range t.Occupations {
		if strings.Contains(strings.ToLower(o.Title), needle) {
			return o, true
		}
	}
	return Occupation{}, false
}

func (t *Tables) TechSkillsFor(code string, limit int) []string {
	examples := t.TechSkills[code]
	if limit > 0 && len(examples) > limit {
		examples = examples[:limit]
	}
	out := make([]string, len(examples))
	copy(out, examples)
	return out
}
