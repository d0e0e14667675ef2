package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/welbinator/therepo/internal/config"
	"github.com/welbinator/therepo/internal/services"
)

// releasecheck prints the latest GitHub release for an owner/repo pair, the
// same lookup the server's background refresher performs.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: releasecheck <owner> <repo>")
		os.Exit(2)
	}
	if err := config.Load(); err != nil {
		log.Fatalf("config load: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	rel, err := services.LatestRelease(ctx, services.NewGitHubClient(), os.Args[1], os.Args[2])
	if err != nil {
		log.Fatalf("latest release: %v", err)
	}
	fmt.Printf("%s\t%s\t%s\n", rel.GetTagName(), rel.GetName(), rel.GetHTMLURL())
}
