package main

import (
	"github.com/alecthomas/kong"

	"github.com/rahmatsyaparudin/modforge/command/app"
	"github.com/rahmatsyaparudin/modforge/command/scaffold"
)

type Command struct {
	Verbose  bool              `help:"Enable verbose output." short:"v"`
	Generate *scaffold.Command `cmd:"generate" help:"Generate a new feature module from the reference templates."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("modforge"),
		kong.Description("Module scaffolding generator for the API boilerplate"),
	)
	err := ctx.Run(&app.App{
		Verbose: command.Verbose,
	})
	ctx.FatalIfErrorf(err)
}
