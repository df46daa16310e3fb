package seed

import (
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
)

func strPtr(v string) *string { return &v }

// DefaultDocuments 返回首屏、关于我和联系方式的初始内容。
func DefaultDocuments() []service.SectionDocument {
	return []service.SectionDocument{
		service.HeroContent{
			Title:       "Assis Medeiros",
			Subtitle:    "DevOps Engineer & Cloud Specialist",
			Description: "Automating deployment processes and optimizing cloud infrastructure for scalable applications.",
			PhotoURL:    "/uploads/Assis-800.jpg",
			CvURL:       "/uploads/CV- DevOps.pdf",
		},
		service.AboutContent{
			Title: "About Me",
			Paragraphs: []string{
				"I'm a DevOps Engineer with over 10 years of experience in IT focusing on cloud infrastructure and automation. I specialize in building robust CI/CD pipelines and implementing infrastructure as code solutions.",
				"My expertise covers a wide range of technologies including Kubernetes, Docker, Terraform, AWS, Azure, and GCP. I'm passionate about automating processes and improving development workflows.",
			},
			Education: "Bachelor's Degree in Systems Analysis",
			Language:  "English (Fluent), Portuguese (Native)",
			Location:  "São Paulo, Brazil",
			Relocate:  "Open to relocation",
			Certifications: []service.Certification{
				{Name: "AWS Certified DevOps Engineer", Issuer: "Amazon Web Services"},
				{Name: "Certified Kubernetes Administrator", Issuer: "Cloud Native Computing Foundation"},
				{Name: "Microsoft Certified: Azure DevOps Engineer", Issuer: "Microsoft"},
			},
		},
		service.ContactContent{
			Title:       "Get In Touch",
			Description: "Feel free to reach out if you're interested in working together or have any questions.",
			Email:       "assisberlanda@gmail.com",
			LinkedIn:    "https://www.linkedin.com/in/assismedeiros/",
			GitHub:      "https://github.com/assisberlanda",
			Location:    "São Paulo, Brazil",
			Relocate:    "Open to relocation",
			DioProfile:  "https://www.dio.me/users/assisberlanda",
		},
	}
}

// DefaultSkills 按分类列出初始技能。
func DefaultSkills() []db.Skill {
	entries := []struct {
		name        string
		category    string
		proficiency int
	}{
		{"Kubernetes", "DevOps", 90},
		{"Docker", "DevOps", 95},
		{"Terraform", "DevOps", 85},
		{"Jenkins", "DevOps", 80},
		{"GitLab CI", "DevOps", 85},
		{"GitHub Actions", "DevOps", 80},

		{"AWS", "Cloud", 90},
		{"Azure", "Cloud", 85},
		{"Google Cloud", "Cloud", 75},

		{"Python", "Programming", 75},
		{"Go", "Programming", 70},
		{"Bash", "Programming", 85},
		{"JavaScript", "Programming", 65},

		{"PostgreSQL", "Database", 70},
		{"MongoDB", "Database", 75},

		{"Prometheus", "Monitoring", 80},
		{"Grafana", "Monitoring", 85},
		{"ELK Stack", "Monitoring", 75},
	}

	skills := make([]db.Skill, 0, len(entries))
	for _, entry := range entries {
		skills = append(skills, db.Skill{
			Name:        entry.name,
			Category:    entry.category,
			Proficiency: entry.proficiency,
			IsVisible:   true,
		})
	}
	return skills
}

// DefaultExperiences 返回初始工作经历，order 越小越靠前。
func DefaultExperiences() []db.Experience {
	return []db.Experience{
		{
			Position:    "Senior DevOps Engineer",
			Company:     "Cloud Solutions Inc.",
			Description: "Led DevOps practices across multiple teams, implementing CI/CD pipelines that reduced deployment time by 70%. Migrated legacy infrastructure to Kubernetes, improving scalability and reducing operational costs by 30%.",
			StartDate:   "2020-01",
			Order:       1,
			IsVisible:   true,
		},
		{
			Position:    "DevOps Engineer",
			Company:     "Tech Innovations Ltd.",
			Description: "Implemented infrastructure as code using Terraform and Ansible. Designed and maintained a microservices architecture using Docker and Kubernetes. Automated deployment processes that increased release frequency from monthly to weekly.",
			StartDate:   "2017-03",
			EndDate:     strPtr("2019-12"),
			Order:       2,
			IsVisible:   true,
		},
		{
			Position:    "Systems Administrator",
			Company:     "Digital Solutions Group",
			Description: "Managed on-premises and cloud infrastructure. Initiated the company's transition to DevOps methodologies by introducing configuration management and automated deployments.",
			StartDate:   "2014-05",
			EndDate:     strPtr("2017-02"),
			Order:       3,
			IsVisible:   true,
		},
	}
}

// DefaultProjects 返回初始的精选项目。
func DefaultProjects() []db.Project {
	return []db.Project{
		{
			Title:       "Cloud Migration Framework",
			Description: "Developed a framework for seamlessly migrating legacy applications to cloud environments with minimal downtime. Includes assessment tools, migration patterns, and automated verification.",
			Tags:        []string{"Terraform", "AWS", "Python", "CI/CD"},
			IsVisible:   true,
			IsFeatured:  true,
		},
		{
			Title:       "Kubernetes Operator for Database Management",
			Description: "Created a custom Kubernetes operator for automating database provisioning, backup, and scaling operations. Supports PostgreSQL and MySQL with automated failover capabilities.",
			Tags:        []string{"Kubernetes", "Go", "Databases", "Operator SDK"},
			RepoURL:     strPtr("https://github.com/assisberlanda/k8s-db-operator"),
			IsVisible:   true,
			IsFeatured:  true,
		},
		{
			Title:       "Monitoring Dashboard",
			Description: "Built a comprehensive monitoring solution using Prometheus and Grafana to provide real-time visibility into application and infrastructure performance.",
			Tags:        []string{"Prometheus", "Grafana", "Monitoring", "Dashboards"},
			RepoURL:     strPtr("https://github.com/assisberlanda/monitoring-dashboard"),
			IsVisible:   true,
			IsFeatured:  true,
		},
	}
}
