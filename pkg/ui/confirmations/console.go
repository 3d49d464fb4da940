// Package confirmations provides the interactive prompts that turn a
// mismatch report into a user decision.
package confirmations

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/stencil/pkg/errors"
	"github.com/arthur-debert/stencil/pkg/logging"
	"github.com/arthur-debert/stencil/pkg/reconcile"
	"github.com/pterm/pterm"
)

// ConsolePrompter implements reconcile.Prompter over a line-oriented console.
// It is not safe for concurrent use.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending is a read left in flight by a cancelled prompt; the next
	// prompt takes its answer instead of starting a second reader
	pending chan readResult

	// Select asks about each dependency instead of the whole report
	Select bool
}

// NewConsolePrompter creates a prompter reading answers from in and writing to out
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// PromptModulesUpdate shows the report and asks whether to update the project
func (p *ConsolePrompter) PromptModulesUpdate(ctx context.Context, report reconcile.Report) (reconcile.Decision, error) {
	logger := logging.GetLogger("confirmations")

	if err := p.showReport(report); err != nil {
		return reconcile.Decision{}, errors.Wrap(err, errors.ErrPrompt, MsgErrWrite)
	}

	if p.Select {
		return p.promptEach(ctx, report)
	}

	yes, err := p.ask(ctx, fmt.Sprintf(MsgUpdateAll, report.Len()), false)
	if err != nil {
		return reconcile.Decision{}, err
	}
	logger.Debug().Bool("approved", yes).Int("count", report.Len()).Msg("update prompt answered")

	return reconcile.Decision{ShouldFix: yes, MismatchedModules: report}, nil
}

// promptEach asks about every dependency. Declined entries are dropped from
// the decision; declining all of them declines the update.
func (p *ConsolePrompter) promptEach(ctx context.Context, report reconcile.Report) (reconcile.Decision, error) {
	selected := reconcile.Report{}
	for _, name := range report.Names() {
		entry := report[name]
		yes, err := p.ask(ctx, fmt.Sprintf(MsgUpdateOne, name, entry.Project, entry.Required), true)
		if err != nil {
			return reconcile.Decision{}, err
		}
		if yes {
			selected[name] = entry
		}
	}

	if selected.Len() == 0 {
		return reconcile.Decision{ShouldFix: false, MismatchedModules: report}, nil
	}
	return reconcile.Decision{ShouldFix: true, MismatchedModules: selected}, nil
}

func (p *ConsolePrompter) showReport(report reconcile.Report) error {
	data := pterm.TableData{{"Dependency", "Collection", "Project", "Required"}}
	for _, name := range report.Names() {
		entry := report[name]
		data = append(data, []string{name, string(entry.Type), entry.Project, entry.Required})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(p.out, "\n%s %s\n\n%s\n\n",
		pterm.Warning.Prefix.Text, fmt.Sprintf(MsgReportHeader, report.Len()), table)
	return err
}

// ask writes question and reads a yes/no answer; an empty answer picks def
func (p *ConsolePrompter) ask(ctx context.Context, question string, def bool) (bool, error) {
	choices := "[y/N]"
	if def {
		choices = "[Y/n]"
	}
	if _, err := fmt.Fprintf(p.out, "%s %s ", question, choices); err != nil {
		return false, errors.Wrap(err, errors.ErrPrompt, MsgErrWrite)
	}

	line, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

type readResult struct {
	line string
	err  error
}

// readLine reads one line of input, giving up when ctx is done. At most one
// read is ever in flight on the underlying reader.
func (p *ConsolePrompter) readLine(ctx context.Context) (string, error) {
	result := p.pending
	p.pending = nil
	if result == nil {
		result = make(chan readResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			result <- readResult{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		p.pending = result
		return "", errors.Wrap(ctx.Err(), errors.ErrPrompt, MsgErrCancelled)
	case r := <-result:
		// A final answer without a trailing newline still counts
		if r.err == io.EOF && r.line != "" {
			return r.line, nil
		}
		if r.err != nil {
			return "", errors.Wrap(r.err, errors.ErrPrompt, MsgErrRead)
		}
		return r.line, nil
	}
}
