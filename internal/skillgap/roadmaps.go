package skillgap

import (
	"fmt"
	"strings"

	"github.com/depu2006/CareerGenomeai/internal/models"
)

type predefined struct {
	key    string
	skills []string
	plan   []models.PlanItem
}

func item(skill, miniProject, duration, cert string, topics ...string) models.PlanItem {
	return models.PlanItem{
		Skill: skill,
		Roadmap: models.Roadmap{
			Topics:        topics,
			MiniProject:   miniProject,
			Duration:      duration,
			Certification: cert,
		},
	}
}

// substring match on the lowercased role, checked in this order
var predefinedRoadmaps = []predefined{
	{
		key:    "frontend",
		skills: []string{"React", "JavaScript", "HTML/CSS", "Git", "Testing"},
		plan: []models.PlanItem{
			item("React", "Task Dashboard", "3 weeks", "Meta Frontend Dev", "Hooks & Context", "State Management", "Performance"),
			item("JavaScript", "Weather App", "2 weeks", "JSE Certified", "ES6+", "Async/Await", "DOM"),
			item("CSS", "Landing Page Clone", "2 weeks", "None", "Flexbox/Grid", "Tailwind", "Responsive"),
			item("Git", "Open Source Contrib", "1 week", "None", "Branching", "PRs", "Conflicts"),
		},
	},
	{
		key:    "full stack",
		skills: []string{"React", "Node.js", "MongoDB", "Express", "API Design"},
		plan: []models.PlanItem{
			item("React", "E-commerce Site", "3 weeks", "Meta Frontend", "Advanced Hooks", "Patterns", "Optimization"),
			item("Node.js", "CLI Tool", "2 weeks", "OpenJS Node Services", "Event Loop", "Streams", "Scalability"),
			item("MongoDB", "Blog Backend", "2 weeks", "MongoDB Associate", "Aggregation", "Indexing", "Schema Design"),
			item("API Design", "Secure Task API", "1 week", "None", "REST", "Auth/JWT", "Security"),
		},
	},
	{
		key:    "devops",
		skills: []string{"Docker", "Kubernetes", "CI/CD", "AWS", "Linux"},
		plan: []models.PlanItem{
			item("Docker", "MERN Stack Containerization", "2 weeks", "Docker Certified", "Containers", "Dockerfiles", "Compose"),
			item("Kubernetes", "Microservice Cluster", "3 weeks", "CKA (Kubernetes Admin)", "Pods", "Deployments", "Helm"),
			item("CI/CD", "Web App Pipeline", "2 weeks", "None", "GitHub Actions", "Pipelines", "Testing"),
			item("AWS", "Static Site Hosting", "2 weeks", "AWS Cloud Practitioner", "EC2/S3", "IAM", "VPC"),
		},
	},
}

func findPredefined(role string) (predefined, bool) {
	lower := strings.ToLower(role)
	for _, p := range predefinedRoadmaps {
		if strings.Contains(lower, p.key) {
			return p, true
		}
	}
	return predefined{}, false
}

type fallbackGroup struct {
	keywords []string
	skills   []string
}

var fallbackGroups = []fallbackGroup{
	{
		keywords: []string{"developer", "engineer", "programmer", "coder", "architect"},
		skills:   []string{"Python", "JavaScript", "SQL", "Git", "Rest API", "React", "Docker", "AWS", "System Design", "CI/CD"},
	},
	{
		keywords: []string{"data", "analyst", "scientist", "ai", "ml"},
		skills:   []string{"Python", "SQL", "Pandas", "Machine Learning", "Data Visualization", "Statistics", "Tableau", "Big Data"},
	},
	{
		keywords: []string{"manager", "lead", "director", "exec"},
		skills:   []string{"Project Management", "Agile", "Communication", "Leadership", "Strategic Planning", "Stakeholder Management"},
	},
}

var genericSkills = []string{"Computer Literacy", "Problem Solving", "Communication", "Time Management", "Project Management"}

// used when the role has no occupation in the reference data
func fallbackSkills(role string) []string {
	lower := strings.ToLower(role)
	for _, g := range fallbackGroups {
		for _, k := range g.keywords {
			if strings.Contains(lower, k) {
				return g.skills
			}
		}
	}
	return genericSkills
}

func templatePlan(skills []string) []models.PlanItem {
	plan := make([]models.PlanItem, 0, len(skills))
	for _, s := range skills {
		plan = append(plan, item(s,
			fmt.Sprintf("Build a simple application using %s", s),
			"2 weeks",
			fmt.Sprintf("%s Certified Associate (Optional)", s),
			s+" Fundamentals", fmt.Sprintf("Advanced %s Concepts", s), s+" Best Practices",
		))
	}
	return plan
}

func clonePlan(plan []models.PlanItem) []models.PlanItem {
	out := make([]models.PlanItem, len(plan))
	for i, p := range plan {
		p.Roadmap.Topics = append([]string(nil), p.Roadmap.Topics...)
		out[i] = p
	}
	return out
}
