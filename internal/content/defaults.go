package content

import "github.com/rajrishis/portfolio/internal/models"

// BuiltinVersion is the Version of the built-in snapshot.
const BuiltinVersion = "builtin"

// Accents lists the card color families the renderer knows about.
var Accents = []string{"blue", "cyan", "purple", "green", "orange", "pink", "red", "yellow", "indigo", "teal"}

// Builtin returns the content compiled into the binary.
func Builtin() *models.Portfolio {
	return &models.Portfolio{
		Profile:  builtinProfile(),
		Projects: builtinProjects(),
		Skills:   builtinSkills(),
		Version:  BuiltinVersion,
	}
}

func builtinProfile() models.Profile {
	return models.Profile{
		Handle:       "@rajrishis",
		Name:         "Rajrishi Sharma",
		Tagline:      "Full-Stack Developer & Digital Craftsman",
		Bio:          "I build thoughtful digital experiences at the intersection of design and engineering. Currently crafting scalable web applications and exploring innovative solutions to complex problems.",
		Availability: "Available for new projects",
		Email:        "srajrishi3@gmail.com",
		ContactText:  "I'm currently open to new opportunities and interesting projects. Whether you have a question or want to collaborate, feel free to reach out.",
		GitHubURL:    "https://github.com/rajrishis",
		LinkedInURL:  "https://www.linkedin.com/in/srajrishi3",
		FooterLinks: []models.Link{
			{Label: "GitHub", URL: "https://github.com/rajrishis"},
			{Label: "LinkedIn", URL: "https://linkedin.com/in/rajrishis"},
			{Label: "Email", URL: "mailto:srajrishi3@gmail.com"},
		},
		Copyright: "© 2025 Rajrishi Sharma · Crafted with care",
	}
}

func builtinProjects() []models.Project {
	return []models.Project{
		{
			Slug:        "ai-chat",
			Title:       "AI Chat Application",
			Description: "Real-time chat application with AI integration, WebSocket connections, and user authentication.",
			Tech:        []string{"React", "Node.js", "OpenAI", "Socket.io"},
			GitHubURL:   "https://github.com/rajrishis/ai-chat",
			DemoURL:     "https://demo.example.com",
			Accent:      "blue",
		},
		{
			Slug:        "cicd-pipeline",
			Title:       "CI/CD Pipeline Automation",
			Description: "Automated deployment pipeline with Docker containerization, Kubernetes orchestration, and comprehensive testing workflow.",
			Tech:        []string{"Jenkins", "Docker", "Kubernetes", "GitHub Actions"},
			GitHubURL:   "https://github.com/rajrishis/cicd-pipeline",
			DemoURL:     "https://demo.example.com",
			Accent:      "cyan",
		},
		{
			Slug:        "ecommerce",
			Title:       "E-Commerce Platform",
			Description: "Full-stack e-commerce solution with payment processing, inventory management, and analytics dashboard.",
			Tech:        []string{"Next.js", "PostgreSQL", "Stripe", "Tailwind"},
			GitHubURL:   "https://github.com/rajrishis/ecommerce",
			DemoURL:     "https://demo.example.com",
			Accent:      "purple",
		},
		{
			Slug:        "task-manager",
			Title:       "Task Management System",
			Description: "Collaborative project management tool with drag-and-drop interface and real-time team collaboration.",
			Tech:        []string{"React", "Firebase", "TypeScript"},
			GitHubURL:   "https://github.com/rajrishis/task-manager",
			DemoURL:     "https://demo.example.com",
			Accent:      "green",
		},
		{
			Slug:        "microservices",
			Title:       "Microservices Infrastructure",
			Description: "Scalable microservices architecture with automated deployment, monitoring, and zero-downtime releases using GitOps principles.",
			Tech:        []string{"Terraform", "ArgoCD", "Prometheus", "AWS"},
			GitHubURL:   "https://github.com/rajrishis/microservices",
			DemoURL:     "https://demo.example.com",
			Accent:      "orange",
		},
		{
			Slug:        "devops-dashboard",
			Title:       "DevOps Dashboard",
			Description: "Real-time monitoring dashboard for CI/CD pipelines with build status, deployment metrics, and automated rollback capabilities.",
			Tech:        []string{"React", "Grafana", "CircleCI", "Node.js"},
			GitHubURL:   "https://github.com/rajrishis/devops-dashboard",
			DemoURL:     "https://demo.example.com",
			Accent:      "pink",
		},
	}
}

func builtinSkills() []string {
	return []string{
		"JavaScript", "TypeScript", "React", "Node.js",
		"Python", "PostgreSQL", "MongoDB", "AWS",
		"Docker", "Git", "REST APIs", "GraphQL",
	}
}
