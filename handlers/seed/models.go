package seed

import "portfolio/backend/schemas"

// SeedRequest controls what the seed endpoint inserts. A missing body or
// field means "insert the demo content".
type SeedRequest struct {
	WithDemo *bool `json:"with_demo"`
}

func (r SeedRequest) withDemo() bool {
	return r.WithDemo == nil || *r.WithDemo
}

func strPtr(s string) *string {
	return &s
}

// demoProfile is the starter "about me" document.
func demoProfile() schemas.Profile {
	return schemas.Profile{
		Name:     "Legas Yasin",
		Role:     "Web Developer",
		Bio:      "I build vibrant, modern, and high-performance web experiences.",
		Location: strPtr("Addis Ababa, Ethiopia"),
		Socials: map[string]*string{
			"github":   strPtr("https://github.com/"),
			"twitter":  nil,
			"linkedin": strPtr("https://www.linkedin.com/"),
			"website":  strPtr("https://example.com"),
		},
		Skills: []string{"React", "Tailwind CSS", "Framer Motion", "Go", "MongoDB"},
	}
}

// demoProjects are the starter project cards.
func demoProjects() []schemas.Project {
	return []schemas.Project{
		{
			Title:       "ColorSplash Landing",
			Description: "Vibrant landing page with animated gradients and responsive design.",
			Image:       strPtr("/images/project-1.jpg"),
			Tags:        []string{"React", "Tailwind"},
		},
		{
			Title:       "Portfolio Grid",
			Description: "Masonry grid of projects with smooth hover effects and modals.",
			Image:       strPtr("/images/project-2.jpg"),
			Tags:        []string{"React", "Framer Motion"},
		},
		{
			Title:       "API Dashboard",
			Description: "Clean dashboard consuming REST APIs with reusable components.",
			Image:       strPtr("/images/project-3.jpg"),
			Tags:        []string{"React", "API"},
		},
	}
}
