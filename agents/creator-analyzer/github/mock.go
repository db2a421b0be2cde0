package github

import (
	"context"

	"holokit/internal/models"
)

// Mock is a fixed developer profile for tests and offline use.
type Mock struct{}

func (Mock) FetchProfile(ctx context.Context, rawURL string) (*models.CreatorProfile, error) {
	return &models.CreatorProfile{
		Platform:    models.PlatformGitHub,
		Name:        "Demo Developer",
		Subscribers: "1.2K followers",
		About:       "Full-stack developer | Open source contributor | Building cool stuff",
		Languages:   []string{"TypeScript", "Python", "Rust", "Go"},
		Items: []models.ContentItem{
			{Title: "ferrite", Description: "A blazingly fast web framework for Rust", Stars: models.Count(4200)},
			{Title: "codepair", Description: "Real-time collaborative code editor", Stars: models.Count(2800)},
			{Title: "mldeploy", Description: "Machine learning model deployment toolkit", Stars: models.Count(1900)},
			{Title: "react-three-viz", Description: "3D visualization library for React", Stars: models.Count(1200)},
			{Title: "scaffold-cli", Description: "CLI tool for project scaffolding", Stars: models.Count(640)},
		},
		Mock: true,
	}, nil
}
