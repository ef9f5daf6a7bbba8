// internal/writers/check_text.go
package writers

import (
	"fmt"
	"io"

	"pepkit/pkg/api"
)

func init() {
	RegisterCheck("text", writeCheckText)
}

func writeCheckText(w io.Writer, rep api.CheckReportV1) error {
	if _, err := fmt.Fprintf(w, "config: %s\n", rep.Config); err != nil {
		return err
	}
	for _, sec := range rep.Sections {
		if _, err := fmt.Fprintf(w, "[%s]\n", sec.Name); err != nil {
			return err
		}
		for _, cmd := range sec.Commands {
			mark := "ok"
			if !cmd.OK {
				mark = "MISSING"
			}
			label := cmd.Command
			if cmd.Name != "" && cmd.Name != cmd.Command {
				label = fmt.Sprintf("%s (%s)", cmd.Name, cmd.Command)
			}
			if _, err := fmt.Fprintf(w, "  %-8s %s\n", mark, label); err != nil {
				return err
			}
		}
	}
	verdict := "all commands callable"
	if !rep.OK {
		verdict = fmt.Sprintf("%d command(s) not callable", len(rep.Failures))
	}
	_, err := fmt.Fprintf(w, "result: %s\n", verdict)
	return err
}
