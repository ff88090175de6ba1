package catalog

import (
	"context"

	"github.com/kusasa/backend/models"
)

// BuiltinSource serves the bundled South African sample catalog
type BuiltinSource struct{}

// Load returns the bundled jobs
func (BuiltinSource) Load(context.Context) ([]models.Job, error) {
	return Builtin(), nil
}

// Builtin returns the bundled sample jobs
func Builtin() []models.Job {
	return []models.Job{
		{
			ID:               "1",
			Title:            "Junior React Developer",
			Company:          "TechCape Solutions",
			Location:         "Cape Town, Western Cape",
			Type:             models.JobTypeHybrid,
			SalaryRange:      "R25,000 - R35,000",
			Description:      "We are looking for a junior developer with strong JavaScript and React fundamentals to join our fintech team. Experience with Tailwind is a plus.",
			RequiredSkills:   []string{"React", "JavaScript", "HTML/CSS", "Git"},
			ApplicationLinks: SearchLinks("Junior React Developer", "Cape Town"),
		},
		{
			ID:               "2",
			Title:            "Data Analyst",
			Company:          "Jozi FinCorp",
			Location:         "Sandton, Gauteng",
			Type:             models.JobTypeOnSite,
			SalaryRange:      "R40,000 - R55,000",
			Description:      "Analyze financial trends using Python and SQL. Visualization experience with Tableau or PowerBI is required.",
			RequiredSkills:   []string{"Python", "SQL", "Data Visualization", "Statistics"},
			ApplicationLinks: SearchLinks("Data Analyst", "Sandton"),
		},
		{
			ID:               "3",
			Title:            "Digital Marketing Specialist",
			Company:          "Durban Creative",
			Location:         "Durban, KZN",
			Type:             models.JobTypeRemote,
			SalaryRange:      "R20,000 - R30,000",
			Description:      "Manage SEO and social media campaigns for retail clients. Content creation skills desired.",
			RequiredSkills:   []string{"SEO", "Social Media Marketing", "Copywriting", "Analytics"},
			ApplicationLinks: SearchLinks("Digital Marketing Specialist", "Durban"),
		},
		{
			ID:               "4",
			Title:            "Cloud Engineer",
			Company:          "AfriCloud",
			Location:         "Centurion, Gauteng",
			Type:             models.JobTypeHybrid,
			SalaryRange:      "R60,000 - R80,000",
			Description:      "Maintain AWS infrastructure and CI/CD pipelines. Knowledge of Docker and Kubernetes essential.",
			RequiredSkills:   []string{"AWS", "Docker", "Kubernetes", "Linux"},
			ApplicationLinks: SearchLinks("Cloud Engineer", "Centurion"),
		},
		{
			ID:               "5",
			Title:            "Customer Success Manager",
			Company:          "ShopLocal SA",
			Location:         "Remote (SA)",
			Type:             models.JobTypeRemote,
			SalaryRange:      "R18,000 - R25,000",
			Description:      "Support local merchants in onboarding to our e-commerce platform. Strong communication skills needed.",
			RequiredSkills:   []string{"Communication", "CRM", "Problem Solving", "English", "IsiZulu"},
			ApplicationLinks: SearchLinks("Customer Success Manager", "Remote (SA)"),
		},
	}
}
