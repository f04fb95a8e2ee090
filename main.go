package main

import (
	"github.com/alecthomas/kong"

	"github.com/robertofierimonte/avocados-and-recipes/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("recipes"), kong.Description("recipes keeps recipes, their ingredients and units of measure."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
