package app

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var AppCommands []*commander.Command = []*commander.Command{
	TrainCmd(),
	EncodeCmd(),
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   os.Args[0],
		Subcommands: AppCommands,
		Flag:        *flag.NewFlagSet("app", flag.ExitOnError),
	}
	return cmd
}
