// Package history exposes the recorded runs through the CLI.
package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nberkley/docs-mirror/pkg/db"
)

// ListAction prints the most recent runs as a table.
func ListAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-8s %-8s %-40s\n",
		"ID", "Started", "Pages", "Success", "Failed", "Base URL")
	fmt.Println(strings.Repeat("-", 95))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-8d %-8d %-8d %-40s\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.PageCount,
			r.SuccessCount,
			r.FailedCount,
			r.BaseURL,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}

// ShowAction prints the per-page rows for one run. With no argument it shows
// the latest run.
func ShowAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	var runID int64
	if c.Args().Present() {
		runID, err = strconv.ParseInt(c.Args().First(), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id: %s", c.Args().First())
		}
	} else {
		runID, err = database.LatestRunID()
		if err != nil {
			return err
		}
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return err
	}

	pages, err := database.GetRunPages(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d — %s\n", run.RunID, run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Base URL: %s\n", run.BaseURL)
	fmt.Printf("Output:   %s\n", run.OutputDir)
	fmt.Printf("Pages: %d  Success: %d  Failed: %d\n\n", run.PageCount, run.SuccessCount, run.FailedCount)

	fmt.Printf("%-40s %-8s %-8s %-10s %-4s %s\n", "Path", "Status", "Stage", "Size", "Lang", "Error")
	fmt.Println(strings.Repeat("-", 100))
	for _, p := range pages {
		fmt.Printf("%-40s %-8s %-8s %-10d %-4s %s\n",
			p.Path, p.Status, p.Stage, p.SizeBytes, p.Language, p.Error)
	}

	return nil
}
