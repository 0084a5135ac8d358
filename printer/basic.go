package printer

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/pfactor/PFactor-core/factor"
)

// PrintSearchNav echoes the effective parameters before the search starts.
func PrintSearchNav(num string, method factor.Method, bound int64, attempts, parallel int) {
	fmt.Printf("factoring %s, B=%d, %d attempts, %d parallel, %s method\n",
		num, bound, attempts, parallel, method)
}

// ResultPrinter writes the single-target outcome in the classic
// "num = d * q" form, or the probably-prime notice when nothing was found.
func ResultPrinter(res *factor.Result) {
	if !res.Found() {
		fmt.Fprintf(color.Output, "%s %s\n",
			color.New(color.FgYellow, color.Bold).Sprintf("%s", res.Num.String()),
			"is probably prime",
		)
		return
	}
	fmt.Fprintf(color.Output, "%s = %s * %s\n",
		color.New(color.FgWhite, color.Bold).Sprintf("%s", res.Num.String()),
		color.New(color.FgGreen, color.Bold).Sprintf("%s", res.Divisor.String()),
		color.New(color.FgGreen, color.Bold).Sprintf("%s", res.Cofactor.String()),
	)
	fmt.Fprintf(color.Output, "%s\n",
		color.New(color.FgHiBlack).Sprintf("method %s, attempt %d, %s",
			res.Method, res.AttemptsUsed, res.Elapsed.Round(time.Microsecond)),
	)
}

// AttemptPrinter is the realtime progress hook for interactive runs.
func AttemptPrinter(ev factor.Event) {
	switch ev.Stage {
	case factor.StageStart:
		fmt.Fprintf(color.Output, "%s attempt %d: fresh base drawn\n",
			color.New(color.FgHiBlack).Sprintf("%s", "·"), ev.Attempt)
	case factor.StageMiss:
		fmt.Fprintf(color.Output, "%s attempt %d: prime stream exhausted\n",
			color.New(color.FgYellow).Sprintf("%s", "×"), ev.Attempt)
	case factor.StageHit:
		fmt.Fprintf(color.Output, "%s attempt %d: divisor %s\n",
			color.New(color.FgGreen).Sprintf("%s", "✓"), ev.Attempt, ev.Divisor)
	}
}
