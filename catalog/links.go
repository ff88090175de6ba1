package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kusasa/backend/models"
)

// SearchLinks builds job-board search links for a title and location.
// Only the city part of the location is used as the search area.
func SearchLinks(title, location string) []models.ApplicationLink {
	q := url.PathEscape(title)
	l := url.PathEscape(searchArea(location))

	return []models.ApplicationLink{
		{Source: models.SourceLinkedIn, URL: fmt.Sprintf("https://www.linkedin.com/jobs/search/?keywords=%s&location=%s", q, l)},
		{Source: models.SourcePnet, URL: fmt.Sprintf("https://www.pnet.co.za/jobs?q=%s&l=%s", q, l)},
		{Source: models.SourceIndeed, URL: fmt.Sprintf("https://za.indeed.com/jobs?q=%s&l=%s", q, l)},
	}
}

func searchArea(location string) string {
	city, _, _ := strings.Cut(location, ",")
	city = strings.TrimSpace(city)
	if city == "" || strings.HasPrefix(strings.ToLower(city), "remote") {
		return "South Africa"
	}
	return city
}
