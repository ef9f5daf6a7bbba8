// internal/cmdcheck/probe.go
package cmdcheck

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// IsCallable reports whether a command resolves to something executable.
// Plain names go through PATH lookup. A command carrying default arguments
// ("samtools view") is judged by its leading word. Anything with shell
// metacharacters is probed with `command -v` under the shell.
func IsCallable(ctx context.Context, command string) bool {
	command = strings.TrimSpace(command)
	if command == "" {
		return false
	}
	if strings.ContainsAny(command, "\"'|&;<>$`") {
		probe := fmt.Sprintf("command -v %s >/dev/null 2>&1", command)
		return exec.CommandContext(ctx, "sh", "-c", probe).Run() == nil
	}
	name := strings.Fields(command)[0]
	_, err := exec.LookPath(name)
	return err == nil
}
