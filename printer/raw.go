package printer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pfactor/PFactor-core/factor"
)

type jsonResult struct {
	Num          string `json:"num"`
	Found        bool   `json:"found"`
	Divisor      string `json:"divisor,omitempty"`
	Cofactor     string `json:"cofactor,omitempty"`
	Method       string `json:"method"`
	AttemptsUsed int    `json:"attempts_used"`
	ElapsedMs    int64  `json:"elapsed_ms"`
}

// RawPrinter emits one easily parseable line per result:
// "num divisor cofactor" or "num * *" when nothing was found.
func RawPrinter(res *factor.Result) {
	if !res.Found() {
		fmt.Printf("%s * *\n", res.Num.String())
		return
	}
	fmt.Printf("%s %s %s\n", res.Num.String(), res.Divisor.String(), res.Cofactor.String())
}

func JSONPrinter(results []*factor.Result) {
	out := make([]jsonResult, 0, len(results))
	for _, res := range results {
		out = append(out, makeJSONResult(res))
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		_ = enc.Encode(out[0])
		return
	}
	_ = enc.Encode(out)
}

func makeJSONResult(res *factor.Result) jsonResult {
	j := jsonResult{
		Num:          res.Num.String(),
		Found:        res.Found(),
		Method:       string(res.Method),
		AttemptsUsed: res.AttemptsUsed,
		ElapsedMs:    res.Elapsed.Milliseconds(),
	}
	if res.Found() {
		j.Divisor = res.Divisor.String()
		j.Cofactor = res.Cofactor.String()
	}
	return j
}
