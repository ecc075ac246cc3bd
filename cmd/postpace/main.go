package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"postpace/internal/cmdlog"
	"postpace/internal/config"
	"postpace/internal/discover"
	"postpace/internal/feed"
	"postpace/internal/feedclient"
	"postpace/internal/metrics"
	"postpace/internal/pace"
	"postpace/internal/render"
	"postpace/internal/theme"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "init":
		cmdInit()
	case "status":
		cmdStatus()
	case "timeline":
		cmdTimeline()
	case "discover":
		cmdDiscover()
	case "", "help", "-h", "--help":
		printHelp()
	default:
		fmt.Fprintln(os.Stderr, "Unknown command:", cmd)
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: postpace <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./postpace.yaml")
	fmt.Println("  status      Print the cumulative pace summary")
	fmt.Println("  timeline    Print the per-day post-count timeline")
	fmt.Println("  discover    Print the feed URL discovered for a site")
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./postpace.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	cfg := config.Default()
	if err := config.Save(*path, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
}

func cmdStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	cfgPath := fs.String("config", "./postpace.yaml", "config path")
	urlFlag := fs.String("url", "", "feed URL override")
	_ = fs.Parse(os.Args[2:])
	cfg := mustLoadConfig(*cfgPath, *urlFlag)
	metrics.StartServer(cfg.Metrics.Addr)
	err := cmdlog.Run("status", func() error {
		posts, err := fetchPosts(context.Background(), cfg)
		if err != nil {
			return err
		}
		summary := pace.Status(posts, time.Now().UTC())
		color := render.ShouldColor(os.Stdout, cfg.Output.Color)
		fmt.Println(render.StatusLine(summary, color))
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to fetch blog posts:", err)
		os.Exit(1)
	}
}

func cmdTimeline() {
	fs := flag.NewFlagSet("timeline", flag.ExitOnError)
	cfgPath := fs.String("config", "./postpace.yaml", "config path")
	urlFlag := fs.String("url", "", "feed URL override")
	live := fs.Bool("live", false, "extend the range through today instead of the last post day")
	_ = fs.Parse(os.Args[2:])
	cfg := mustLoadConfig(*cfgPath, *urlFlag)
	metrics.StartServer(cfg.Metrics.Addr)
	err := cmdlog.Run("timeline", func() error {
		posts, err := fetchPosts(context.Background(), cfg)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			return nil
		}
		asOf := pace.LastDay(posts)
		if *live {
			asOf = time.Now().UTC()
		}
		color := render.ShouldColor(os.Stdout, cfg.Output.Color)
		for _, row := range pace.Timeline(posts, asOf) {
			fmt.Println(render.TimelineLine(row, color))
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to fetch blog posts:", err)
		os.Exit(1)
	}
}

func cmdDiscover() {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	site := fs.String("site", "", "blog homepage URL")
	_ = fs.Parse(os.Args[2:])
	if *site == "" && fs.NArg() > 0 {
		*site = fs.Arg(0)
	}
	if *site == "" {
		fmt.Fprintln(os.Stderr, "error: no site URL given (use -site)")
		os.Exit(1)
	}
	err := cmdlog.Run("discover", func() error {
		client := feedclient.New("")
		u, err := discover.Feed(context.Background(), client, *site)
		if err != nil {
			return err
		}
		fmt.Println(u)
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// mustLoadConfig loads the config file (or defaults plus environment when it
// is absent), applies the -url override, and enforces that a feed URL is
// known. A missing URL is a configuration error, not a fetch error.
func mustLoadConfig(path, urlOverride string) config.Config {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if urlOverride != "" {
		cfg.Blog.FeedURL = urlOverride
	}
	if cfg.Blog.FeedURL == "" {
		fmt.Fprintln(os.Stderr, "error: no feed URL configured (set blog.feedURL or BLOG_FEED_URL)")
		os.Exit(1)
	}
	return cfg
}

// fetchPosts runs the fetch-and-normalize pipeline once: GET the configured
// URL, decode per the configured source, and return sorted UTC post days.
func fetchPosts(ctx context.Context, cfg config.Config) ([]time.Time, error) {
	client := feedclient.New(cfg.Credentials.APIToken)
	metrics.FetchRuns.Inc()
	start := time.Now()
	body, err := client.Fetch(ctx, cfg.Blog.FeedURL)
	metrics.ObserveFetchDuration(start)
	if err != nil {
		metrics.FetchErrors.Inc()
		return nil, err
	}
	posts, err := normalize(body, cfg.Blog.Source)
	if err != nil {
		metrics.FetchErrors.Inc()
		return nil, err
	}
	return posts, nil
}

func normalize(body []byte, source string) ([]time.Time, error) {
	switch source {
	case "jsonfeed", "api":
		p, err := feed.Decode(body)
		if err != nil {
			return nil, err
		}
		return p.PostDates()
	case "rss":
		return feed.ParseSyndication(body)
	default: // auto
		return feed.DetectPostDates(body)
	}
}
