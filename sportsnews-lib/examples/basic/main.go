// ABOUTME: Basic example showing sports news aggregation with the library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	sportsnews "sports-news-api/sportsnews-lib"
)

func main() {
	// Example 1: Create a client with the built-in catalog
	client, err := sportsnews.NewClient()
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// Example 2: Aggregate one sport
	fmt.Println("=== Soccer ===")
	res, err := client.Aggregate(ctx, "soccer", sportsnews.WithLimitPerFeed(10))
	if err != nil {
		log.Fatalf("Error aggregating: %v", err)
	}
	for i, a := range res.Articles {
		published := "unknown date"
		if a.Published != nil {
			published = a.Published.Format(time.RFC3339)
		}
		fmt.Printf("%2d. %s (%s, %s)\n", i+1, a.Title, a.Source, published)
	}
	fmt.Printf("%d raw, %d kept, %d duplicate links, %d similar titles\n",
		res.Stats.Raw, res.Stats.Items, res.Stats.DroppedByLink, res.Stats.DroppedByTitle)

	// Example 3: Feeds that failed are reported, not returned as errors
	for _, f := range res.Feeds {
		if f.Status != "succeeded" {
			fmt.Printf("feed %s %s: %s\n", f.URL, f.Status, f.Error)
		}
	}

	// Example 4: Stricter matching, newest first
	fmt.Println("\n=== NBA, newest first ===")
	res, err = client.Aggregate(ctx, "basketball", sportsnews.WithThreshold(95), sportsnews.WithNewestFirst())
	if err != nil {
		log.Fatalf("Error aggregating: %v", err)
	}
	for _, a := range res.Articles {
		fmt.Println("-", a.Title)
	}
}
