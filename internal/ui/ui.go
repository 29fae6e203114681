// Package ui renders gitpublish's terminal output and reads its
// interactive prompts.
//
// Output goes through a Printer with injectable writers and reader, so
// tests can capture exact output and script prompt answers. Status and
// success lines go to stdout; errors and warnings go to stderr, keeping
// stdout clean for the information the user asked for.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mmr-tortoise/gitpublish/internal/model"
)

// ANSI escape codes.
const (
	reset     = "\033[0m"
	bold      = "\033[1m"
	underline = "\033[4m"
	red       = "\033[31m"
	green     = "\033[32m"
	yellow    = "\033[33m"
	cyan      = "\033[36m"
)

// commitDisplayLimit caps how many commit messages the analysis block
// prints before summarizing the rest.
const commitDisplayLimit = 10

// commitDisplayWidth truncates long commit subjects in the analysis block.
const commitDisplayWidth = 60

// Printer renders messages and runs prompts. The zero value is unusable;
// construct with New or, in tests, populate the fields directly.
type Printer struct {
	// Out receives status and result output (stdout).
	Out io.Writer

	// Err receives errors and warnings (stderr).
	Err io.Writer

	// In supplies prompt answers (stdin).
	In io.Reader

	// reader buffers In across prompts. Lazily initialized; a fresh
	// bufio.Reader per prompt would drop input the previous prompt had
	// buffered past its newline.
	reader *bufio.Reader
}

// New returns a Printer wired to the process's standard streams.
func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr, In: os.Stdin}
}

// Error prints a red ERROR line to stderr.
func (p *Printer) Error(message string) {
	fmt.Fprintf(p.Err, red+"ERROR:"+reset+" %s\n", message)
}

// Success prints a green checkmark line.
func (p *Printer) Success(message string) {
	fmt.Fprintf(p.Out, green+"✓"+reset+" %s\n", message)
}

// Status prints a yellow arrow line.
func (p *Printer) Status(message string) {
	fmt.Fprintf(p.Out, yellow+"→"+reset+" %s\n", message)
}

// Warn prints a boundary warning to stderr. The warning's own String
// method supplies the wording; this adds only the marker.
func (p *Printer) Warn(warning model.BoundaryWarning) {
	p.Warnf("%s", warning)
}

// Warnf prints a formatted warning line to stderr.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.Err, yellow+"⚠ WARNING:"+reset+" "+format+"\n", args...)
}

// CommitAnalysis prints the branch being analyzed and up to ten of its
// commit messages, truncated to one line each.
func (p *Printer) CommitAnalysis(messages []string, branch string) {
	fmt.Fprintf(p.Out, "\n"+bold+"Analyzing commits on branch '%s'"+reset+"\n", branch)
	fmt.Fprintf(p.Out, underline+"Last %d commits:"+reset+"\n", len(messages))

	for i, message := range messages {
		if i == commitDisplayLimit {
			break
		}
		subject, _, _ := strings.Cut(message, "\n")
		// Truncate on rune boundaries so a multi-byte subject cannot be
		// cut mid-rune into invalid UTF-8.
		if runes := []rune(subject); len(runes) > commitDisplayWidth {
			subject = string(runes[:commitDisplayWidth])
		}
		fmt.Fprintf(p.Out, "  %d. %s\n", i+1, subject)
	}

	if len(messages) > commitDisplayLimit {
		fmt.Fprintf(p.Out, "  ... and %d more commits\n", len(messages)-commitDisplayLimit)
	}
}

// ProposedTag prints the tag transition: From/To when a previous tag
// exists, or the initial tag otherwise.
func (p *Printer) ProposedTag(oldTag, newTag string) {
	if oldTag != "" {
		fmt.Fprintf(p.Out, "\n"+bold+"Proposed Tag Change:"+reset+"\n")
		fmt.Fprintf(p.Out, "  From: "+red+"%s"+reset+"\n", oldTag)
		fmt.Fprintf(p.Out, "  To:   "+green+"%s"+reset+"\n", newTag)
		return
	}
	fmt.Fprintf(p.Out, "\n"+bold+"Initial Tag:"+reset+"\n")
	fmt.Fprintf(p.Out, "  New tag: "+green+"%s"+reset+"\n", newTag)
}

// Branches prints the configured branch list.
func (p *Printer) Branches(branches []string) {
	fmt.Fprintln(p.Out, bold+"Configured branches:"+reset)
	for _, branch := range branches {
		fmt.Fprintf(p.Out, "  - %s\n", branch)
	}
}

// ManualPushInstruction prints the command to push a locally created tag,
// for when the automatic push failed or was skipped.
func (p *Printer) ManualPushInstruction(tag, remote string) {
	fmt.Fprintf(p.Out, "\n"+yellow+"→"+reset+" To push this tag later, run:\n  "+cyan+"git push %s %s"+reset+"\n", remote, tag)
}

// Confirm asks a yes/no question. Only "y" or "yes" (case-insensitive)
// confirm; anything else, including a bare Enter, declines.
func (p *Printer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.Out, "%s (y/N): ", prompt)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// SelectBranch prompts for one of the available branches. A single
// available branch is returned without prompting.
func (p *Printer) SelectBranch(branches []string) (string, error) {
	return p.selectFrom("Available branches for tagging", "branch", branches)
}

// SelectRemote prompts for one of the available remotes. A single
// available remote is returned without prompting.
func (p *Printer) SelectRemote(remotes []string) (string, error) {
	return p.selectFrom("Available remotes", "remote", remotes)
}

// selectFrom renders a numbered list and reads a 1-based selection, with
// the first item as the default on a bare Enter.
func (p *Printer) selectFrom(title, noun string, options []string) (string, error) {
	if len(options) == 1 {
		return options[0], nil
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no %s available to select", noun)
	}

	fmt.Fprintf(p.Out, "\n"+bold+"%s:"+reset+"\n", title)
	for i, option := range options {
		fmt.Fprintf(p.Out, "  %d. %s\n", i+1, option)
	}
	fmt.Fprintf(p.Out, "\nSelect a %s (1-%d) [default: 1]: ", noun, len(options))

	line, err := p.readLine()
	if err != nil {
		return "", err
	}

	selection := strings.TrimSpace(line)
	index := 1
	if selection != "" {
		index, err = strconv.Atoi(selection)
		if err != nil {
			index = 0
		}
	}

	if index < 1 || index > len(options) {
		return "", fmt.Errorf("invalid %s selection %q", noun, selection)
	}
	return options[index-1], nil
}

// readLine reads one line from the prompt input. EOF with no data is an
// error: a prompt with no answer cannot proceed.
func (p *Printer) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading prompt input: %w", err)
	}
	return line, nil
}
