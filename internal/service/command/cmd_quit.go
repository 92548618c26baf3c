package command

import "context"

// QuitCommand has no effect of its own. The router reports OutcomeQuit once
// it has run.
type QuitCommand struct {
	keyword string
}

func NewQuitCommand(keyword string) *QuitCommand {
	return &QuitCommand{keyword: keyword}
}

func (c *QuitCommand) Name() string {
	return c.keyword
}

func (c *QuitCommand) Aliases() []string {
	return nil
}

func (c *QuitCommand) Description() string {
	return "Quits the program"
}

func (c *QuitCommand) Execute(ctx context.Context, args []string) error {
	return nil
}
