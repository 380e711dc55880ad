package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"labelscan/constants"
	labelscanv1 "labelscan/gen/proto/labelscan/v1"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		addr  = flag.String("addr", "localhost:8080", "daemon gRPC address")
		dir   = flag.String("dir", "", "directory of PDFs to submit (required)")
		owner = flag.String("owner", "cli", "owner id recorded on the job")
		wait  = flag.Bool("wait", true, "tail job events until the job finishes")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	filenames, err := listPDFs(*dir)
	if err != nil {
		printError("Error: reading %s: %v\n", *dir, err)
		os.Exit(1)
	}
	if len(filenames) == 0 {
		printError("Error: no PDF files in %s\n", *dir)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		printError("Error: connecting to %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()
	client := labelscanv1.NewJobsServiceClient(conn)

	absDir, err := filepath.Abs(*dir)
	if err != nil {
		printError("Error: resolving %s: %v\n", *dir, err)
		os.Exit(1)
	}
	created, err := client.CreateJob(ctx, &labelscanv1.CreateJobRequest{
		OwnerId:    *owner,
		SourcePath: absDir,
		Filenames:  filenames,
	})
	if err != nil {
		printError("Error: create job: %v\n", err)
		os.Exit(1)
	}
	job := created.GetJob()
	fmt.Printf("job %s created with %d file(s)\n", job.GetId(), job.GetTotalFiles())

	if !*wait {
		return
	}
	if err := tail(ctx, client, job.GetId()); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
}

func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// tail streams job events to stdout, reconnecting with the last seen event id
// until the job reaches a terminal status.
func tail(ctx context.Context, client labelscanv1.JobsServiceClient, jobID string) error {
	var lastEventID int64
	for {
		stream, err := client.StreamJobEvents(ctx, &labelscanv1.StreamJobEventsRequest{
			JobId:        jobID,
			AfterEventId: lastEventID,
		})
		if err != nil {
			return fmt.Errorf("stream events: %w", err)
		}
		for {
			ev, err := stream.Recv()
			if err == io.EOF {
				return finish(ctx, client, jobID)
			}
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				// Interrupted stream; back off and resume from the cursor.
				time.Sleep(time.Second)
				break
			}
			lastEventID = ev.GetEventId()
			fmt.Printf("[%s] %-7s %s\n", ev.GetCreatedAt(), strings.ToUpper(ev.GetLevel()), ev.GetMessage())
		}
	}
}

func finish(ctx context.Context, client labelscanv1.JobsServiceClient, jobID string) error {
	resp, err := client.GetJob(ctx, &labelscanv1.GetJobRequest{JobId: jobID})
	if err != nil {
		return fmt.Errorf("get job: %w", err)
	}
	job := resp.GetJob()
	fmt.Printf("job %s %s (%d/%d files)\n",
		job.GetId(), job.GetStatus(), job.GetProcessedFiles(), job.GetTotalFiles())

	if constants.JobStatus(job.GetStatus()) != constants.JobStatusCompleted {
		if msg := job.GetErrorMessage(); msg != "" {
			printError("%s\n", msg)
		}
		return nil
	}
	art, err := client.GetArtifact(ctx, &labelscanv1.GetArtifactRequest{JobId: jobID})
	if err != nil {
		return fmt.Errorf("get artifact: %w", err)
	}
	fmt.Printf("report: %s (%d bytes)\n", art.GetArtifactPath(), art.GetSize())
	return nil
}
