package gemini

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kusasa/backend/models"
)

// Course providers suggested to the model for upskilling recommendations
var courseProviders = []string{
	"Udemy",
	"Coursera",
	"ALX",
	"Google Digital Skills for Africa",
	"University of Cape Town Online",
}

const fileInstruction = "Analyze the resume provided in the file attachment and extract the candidate's profile."

func profileSystemInstruction(market string) string {
	return fmt.Sprintf("You are an expert HR recruiter for the %s market. "+
		"Be generous with extracting skills, inferring soft skills from experience.", market)
}

func profileTextPrompt(text string) string {
	return fmt.Sprintf("Analyze the following CV/Resume text:\n\"%s\"", text)
}

func matchPrompt(profile *models.CandidateProfile, jobs []models.Job, market string) string {
	var sb strings.Builder

	sb.WriteString("Candidate Profile:\n")
	fmt.Fprintf(&sb, "Summary: %s\n", profile.Summary)
	fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(profile.SkillNames(), ", "))
	fmt.Fprintf(&sb, "Experience: %s years.\n\n", strconv.FormatFloat(profile.YearsExperience, 'f', -1, 64))

	sb.WriteString("Available Jobs:\n")
	for i, job := range jobs {
		if i > 0 {
			sb.WriteString("\n---\n")
		}
		fmt.Fprintf(&sb, "ID: %s, Title: %s, Desc: %s, Required: %s",
			job.ID, job.Title, job.Description, strings.Join(job.RequiredSkills, ", "))
	}

	sb.WriteString("\n\nTask:\n")
	sb.WriteString("1. Score the match of the candidate to EACH job (0-100).\n")
	sb.WriteString("2. Identify critical missing skills for each job. Only list skills from that job's Required list.\n")
	fmt.Fprintf(&sb, "3. If there are missing skills, recommend 1-2 upskilling courses specifically relevant to %s job seekers "+
		"(e.g. using providers like %s).\n", market, strings.Join(courseProviders, ", "))
	sb.WriteString("Return one entry per job, using the job's ID as jobId.")

	return sb.String()
}
