package main

import "github.com/Zachkp/portfolio/internal/marquee"

type Link struct {
	Label string
	Href  string
}

type Project struct {
	Title       string
	Description string
	Tags        []string
	GitHub      string
	Demo        string
	Image       string
}

type Site struct {
	Name     string
	Role     string
	Location string
	Intro    struct {
		Headline     string
		Subtext      string
		CTAPrimary   Link
		CTASecondary Link
	}
	// Roles cycle through the hero typewriter.
	Roles   []string
	Socials []Link
	Skills  struct {
		Languages  []string
		Frameworks []string
		APIsTools  []string
	}
	Projects []Project
	Contact  struct {
		Blurb    string
		Email    string
		Location string
	}
}

var SITE = func() Site {
	s := Site{
		Name:     "Hirab Abdourazak",
		Role:     "Software Engineer & ML Enthusiast",
		Location: "Philadelphia, PA",
		Roles:    []string{"Software Engineer", "ML Enthusiast", "Full-Stack Developer"},
		Socials: []Link{
			{Label: "GitHub", Href: "https://github.com/Hxrob"},
			{Label: "LinkedIn", Href: "https://www.linkedin.com/in/hirabdou"},
			{Label: "Email", Href: "mailto:hirababdourazak@gmail.com"},
		},
		Projects: []Project{
			{
				Title:       "One Point Five",
				Description: "A client-focused real estate website designed to showcase property listings with a sleek, responsive UI.",
				Tags:        []string{"React.js", "Resend", "Google Cloud", "Vercel"},
				GitHub:      "https://github.com/Hxrob/onepointfive",
				Demo:        "https://onepointfivehotel.com",
				Image:       "/images/onepointfive.jpeg",
			},
			{
				Title:       "HotSpot",
				Description: "A geolocation-based event discovery and real-time alert app that lets users broadcast, find, and join nearby happenings.",
				Tags:        []string{"React.js", "Express", "Firebase", "Google Maps API"},
				GitHub:      "https://github.com/cis3296f24/01-HotSpot",
				Image:       "/images/hotspot.png",
			},
			{
				Title:       "Piglet Prep",
				Description: "An interactive video learning platform for children, embedding real-time multiple-choice and object-detection questions into videos to assess understanding and adapt learning.",
				Tags:        []string{"Next.js", "OpenAI API", "Rekognition", "MongoDB"},
				GitHub:      "https://github.com/Capstone-Projects-2025-Spring/project-piggyback-learning-team-1",
				Demo:        "https://pigletprep.vercel.app",
				Image:       "/images/pigletprep.jpeg",
			},
		},
	}
	s.Intro.Headline = "Building reliable, delightful, intelligent apps."
	s.Intro.Subtext = "Recent CS grad focused on SWE + ML/AI. I ship full-stack products, optimize performance, and love clean design."
	s.Intro.CTAPrimary = Link{Label: "Contact Me", Href: "#contact"}
	s.Intro.CTASecondary = Link{Label: "View Projects", Href: "#projects"}

	s.Skills.Languages = []string{"TypeScript", "Python", "Java", "C/C++", "SQL", "Go", "JavaScript"}
	s.Skills.Frameworks = []string{"React", "Next.js", "Node.js", "Express", "Flask", "Tailwind", "Framer Motion", "FastAPI"}
	s.Skills.APIsTools = []string{"OpenAI API", "Firebase", "MongoDB", "AWS (Rekognition, S3)", "Docker", "Vite", "Git", "Google Cloud", "Resend"}

	s.Contact.Blurb = "Interested in SWE/ML roles or collaborations. I'm open to internships, new-grad roles, and contract work!"
	s.Contact.Email = "hirababdourazak@gmail.com"
	s.Contact.Location = "Philadelphia, PA"
	return s
}()

// SkillItems flattens every skill group into marquee items.
func (s Site) SkillItems() []marquee.Item {
	var items []marquee.Item
	for _, group := range [][]string{s.Skills.Languages, s.Skills.Frameworks, s.Skills.APIsTools} {
		for _, name := range group {
			items = append(items, marquee.Item{Node: name, Title: name})
		}
	}
	return items
}

// Title is the document title and the og:title/twitter:title value.
func (s Site) Title() string {
	return s.Name + " - " + s.Role
}
