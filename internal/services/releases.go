package services

import (
	"context"
	"log"
	"time"

	"github.com/google/go-github/v68/github"

	"github.com/welbinator/therepo/internal/config"
	"github.com/welbinator/therepo/internal/database"
	"github.com/welbinator/therepo/internal/models"
)

// NewGitHubClient builds a client, authenticated when GITHUB_TOKEN is set.
func NewGitHubClient() *github.Client {
	client := github.NewClient(nil)
	if config.Current.GitHubToken != "" {
		client = client.WithAuthToken(config.Current.GitHubToken)
	}
	return client
}

// LatestRelease fetches the latest published release of a repository.
func LatestRelease(ctx context.Context, client *github.Client, owner, repo string) (*github.RepositoryRelease, error) {
	rel, _, err := client.Repositories.GetLatestRelease(ctx, owner, repo)
	return rel, err
}

// StartReleaseRefresher launches a background ticker that periodically looks
// up the latest GitHub release of every GitHub-hosted submission and stores
// the tag name as latest_version meta. It never runs inside a request cycle.
func StartReleaseRefresher(ctx context.Context) {
	interval := config.Current.RefreshInterval
	if interval <= 0 {
		log.Printf("release refresher disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		refreshReleases(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refreshReleases(ctx)
			}
		}
	}()
}

func refreshReleases(ctx context.Context) {
	db := database.DB
	client := NewGitHubClient()

	var rows []models.SubmissionMeta
	if err := db.Where("key = ? AND value = ?", models.MetaHostedOnGitHub, "yes").Find(&rows).Error; err != nil {
		log.Printf("release refresh: list submissions: %v", err)
		return
	}

	for _, row := range rows {
		owner := GetMeta(db, row.SubmissionID, models.MetaGitHubUsername)
		repo := GetMeta(db, row.SubmissionID, models.MetaGitHubRepo)
		if owner == "" || repo == "" {
			continue
		}
		rel, err := LatestRelease(ctx, client, owner, repo)
		if err != nil {
			log.Printf("release refresh: %s/%s: %v", owner, repo, err)
			continue
		}
		tag := rel.GetTagName()
		if tag == "" {
			continue
		}
		if err := SetMeta(db, row.SubmissionID, models.MetaLatestVersion, tag); err != nil {
			log.Printf("release refresh: save version for submission %d: %v", row.SubmissionID, err)
		}
	}
}
