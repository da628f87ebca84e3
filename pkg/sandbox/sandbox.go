package sandbox

import (
	"context"
	"fmt"
)

// WorkDir is where the repository is cloned inside every sandbox.
const WorkDir = "/work"

// Sandbox is a live remote sandbox bound to a provider client.
type Sandbox struct {
	ID     string
	client *Client
}

// RunCommand executes a command and returns its result. A non-zero exit
// code is not an error at this level; callers decide.
func (s *Sandbox) RunCommand(ctx context.Context, cmd string, args []string) (*CommandResult, error) {
	return s.client.RunCommand(ctx, s.ID, cmd, args)
}

// Shell runs a script through bash -lc in the work directory.
func (s *Sandbox) Shell(ctx context.Context, script string) (*CommandResult, error) {
	return s.RunCommand(ctx, "bash", []string{"-lc", fmt.Sprintf("cd %s && %s", WorkDir, script)})
}

// Snapshot freezes the sandbox and returns the snapshot id. The sandbox is
// stopped by the provider as part of snapshotting.
func (s *Sandbox) Snapshot(ctx context.Context) (string, error) {
	return s.client.Snapshot(ctx, s.ID)
}

// Stop shuts the sandbox down.
func (s *Sandbox) Stop(ctx context.Context) error {
	return s.client.Stop(ctx, s.ID)
}
