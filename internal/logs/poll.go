package logs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rajatjindal/cloud-plugin/pkg/types"
)

// Fetcher retrieves log entries for a channel. Entries are newest-first;
// lines within an entry are chronological.
type Fetcher interface {
	ChannelLogs(ctx context.Context, channelID uuid.UUID, maxLines *int, since *string) ([]types.LogEntry, error)
}

// Options configures a poll run. Interval and MaxLines only matter when
// Follow is set and on the first fetch respectively.
type Options struct {
	Follow   bool
	Interval time.Duration
	MaxLines int
	Since    time.Duration
	Out      io.Writer
}

// Poller drives the fetch/print loop against a Fetcher.
type Poller struct {
	client Fetcher

	// sleep and now are swappable for tests.
	sleep func(time.Duration)
	now   func() time.Time
}

// NewPoller creates a Poller over the given fetcher.
func NewPoller(client Fetcher) *Poller {
	return &Poller{
		client: client,
		sleep:  time.Sleep,
		now:    time.Now,
	}
}

// Run fetches and prints channel logs. The cursor starts at now minus
// Options.Since and advances to the timestamp of the last printed line after
// every non-empty fetch, so repeated fetches never reprint a line. Without
// Follow it performs exactly one fetch; with Follow it sleeps Interval
// between fetches and loops until a fetch fails or the process dies. Only
// the first fetch is bounded by MaxLines.
func (p *Poller) Run(ctx context.Context, channelID uuid.UUID, opts Options) error {
	cursor := p.now().UTC().Add(-opts.Since).Format(time.RFC3339)

	cursor, err := p.fetchOnce(ctx, channelID, &opts.MaxLines, cursor, opts.Out)
	if err != nil {
		return err
	}

	if !opts.Follow {
		return nil
	}

	for {
		p.sleep(opts.Interval)
		cursor, err = p.fetchOnce(ctx, channelID, nil, cursor, opts.Out)
		if err != nil {
			return err
		}
	}
}

// fetchOnce performs a single fetch and returns the advanced cursor. An
// empty result leaves the cursor untouched.
func (p *Poller) fetchOnce(ctx context.Context, channelID uuid.UUID, maxLines *int, since string, w io.Writer) (string, error) {
	entries, err := p.client.ChannelLogs(ctx, channelID, maxLines, &since)
	if err != nil {
		return "", err
	}

	if len(entries) == 0 {
		return since, nil
	}

	cursor, err := printEntries(w, entries)
	if err != nil {
		return "", err
	}
	if cursor == "" {
		// Entries present but no lines in any of them.
		return since, nil
	}
	return cursor, nil
}

// printEntries writes every line to w in chronological order and returns the
// timestamp of the last line as the new cursor. Entries arrive newest-first,
// so they are walked in reverse. A line missing its timestamp or content
// breaks the cursor contract and aborts the run.
func printEntries(w io.Writer, entries []types.LogEntry) (string, error) {
	var cursor string
	for i := len(entries) - 1; i >= 0; i-- {
		for _, line := range entries[i].LogLines {
			if line.Time == nil || line.Line == nil {
				return "", fmt.Errorf("malformed log entry: line is missing its timestamp or content")
			}
			fmt.Fprintln(w, *line.Line)
			cursor = *line.Time
		}
	}
	return cursor, nil
}
