package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/evothings/workbench/internal/config"
	"github.com/evothings/workbench/internal/download"
	"github.com/evothings/workbench/internal/fileutil"
	"github.com/evothings/workbench/internal/homedir"
	"github.com/evothings/workbench/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command and returns the process exit code. Deferred
// cleanup runs before main exits.
func run(args []string, stdout io.Writer) int {
	cfg := config.LoadOrDefault()

	fs := flag.NewFlagSet("evopaths", flag.ContinueOnError)
	listApps := fs.Bool("apps", false, "List apps found under the MyApps directory")
	url := fs.String("url", "", "Download URL and print the response body")
	userAgent := fs.String("user-agent", cfg.Download.UserAgent, "User-Agent for -url")
	logLevel := fs.String("log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg.Logging.Level = *logLevel
	logger := logging.NewOrNop(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	locator := homedir.NewLocator(homedir.CurrentEnvironment(), logger)
	printPaths(stdout, locator.Paths())

	if *listApps {
		if err := printApps(ctx, stdout, locator); err != nil {
			logger.Error("Failed to list apps", zap.Error(err))
			return 1
		}
	}

	if *url != "" {
		client := download.NewClient(download.WithLogger(logger))
		status, body := fetch(ctx, client, *url, *userAgent)
		if status == download.StatusFailed {
			logger.Error("Download failed", zap.String("url", *url), zap.String("error", body))
			return 1
		}
		fmt.Fprintf(stdout, "\nHTTP %d\n%s\n", status, body)
	}
	return 0
}

func printPaths(w io.Writer, p homedir.Paths) {
	rows := []struct{ label, value string }{
		{"Home", p.Home},
		{"Evothings", p.EvothingsHome},
		{"Evothings (old)", p.OldEvothingsHome},
		{"MyApps", p.MyApps},
	}
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = "(unresolved)"
		} else if !fileutil.PathExists(value) {
			value += " (missing)"
		}
		fmt.Fprintf(w, "%-16s %s\n", row.label+":", value)
	}
}

func printApps(ctx context.Context, w io.Writer, locator *homedir.Locator) error {
	myApps, ok := locator.MyAppsPath()
	if !ok || !fileutil.PathExists(myApps) {
		fmt.Fprintln(w, "\nNo MyApps directory")
		return nil
	}

	apps, err := fileutil.FindApps(ctx, myApps)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d app(s) in %s\n", len(apps), myApps)
	for _, app := range apps {
		marker := " "
		if app.HasSettings {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-30s %s\n", marker, app.Title, app.Dir)
	}
	return nil
}

// fetch waits for the download callback or for ctx to end.
func fetch(ctx context.Context, client *download.Client, url, userAgent string) (int, string) {
	type result struct {
		status int
		body   string
	}

	done := make(chan result, 1)
	client.DownloadAsString(url, userAgent, func(status int, body string) {
		done <- result{status: status, body: body}
	})

	select {
	case r := <-done:
		return r.status, r.body
	case <-ctx.Done():
		return download.StatusFailed, ctx.Err().Error()
	}
}
