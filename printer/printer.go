package printer

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/pfactor/PFactor-core/config"
)

var version = config.Version
var buildDate = config.BuildDate
var commitID = config.CommitID

func Version() {
	fmt.Fprintf(color.Output, "%s %s %s %s\n",
		color.New(color.FgWhite, color.Bold).Sprintf("%s", "PFactor"),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", version),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", buildDate),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", commitID),
	)
}

func CopyRight() {
	fmt.Fprintf(color.Output, "%s\n%s %s\n%s %s\n",
		color.New(color.FgCyan, color.Bold).Sprintf("%s", "PFactor"),
		color.New(color.FgWhite, color.Bold).Sprintf("%s", "Smooth-exponent factor search,"),
		color.New(color.FgHiBlack, color.Bold).Sprintf("%s", "after J. M. Pollard (1974)"),
		color.New(color.FgWhite, color.Bold).Sprintf("%s", "Source:"),
		color.New(color.FgHiBlue, color.Bold).Sprintf("%s", "github.com/pfactor/PFactor-core"),
	)
}
