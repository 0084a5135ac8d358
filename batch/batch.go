package batch

import (
	"bufio"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/pfactor/PFactor-core/factor"
	"github.com/pfactor/PFactor-core/util"
)

// Target is one candidate from a batch file, with optional per-candidate
// overrides of the search parameters.
type Target struct {
	Raw      string
	Num      *big.Int
	Bound    int64
	Attempts int
	Method   factor.Method
}

// LoadFile reads one candidate per line. CSV lines are accepted as long as
// the candidate is the first column; blank lines and #-comments are skipped
// and duplicates are dropped.
func LoadFile(filename string) ([]Target, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open batch file")
	}
	defer fp.Close()

	targets := make([]Target, 0)
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(fp)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw := strings.TrimSpace(strings.SplitN(line, ",", 2)[0])

		num, err := util.ParseNum(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d", filename, lineNo)
		}

		key := num.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		targets = append(targets, Target{Raw: raw, Num: num})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read batch file")
	}
	return targets, nil
}

// LoadJSON accepts either an array of candidate strings or an array of
// objects carrying num plus optional bound/attempts/method overrides.
func LoadJSON(data []byte) ([]Target, error) {
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, errors.New("batch JSON must be an array")
	}

	targets := make([]Target, 0)
	seen := make(map[string]struct{})
	var loadErr error

	parsed.ForEach(func(_, value gjson.Result) bool {
		raw := value.String()
		var t Target
		if value.IsObject() {
			raw = value.Get("num").String()
			t.Bound = value.Get("bound").Int()
			t.Attempts = int(value.Get("attempts").Int())
			t.Method = factor.Method(value.Get("method").String())
		}

		num, err := util.ParseNum(raw)
		if err != nil {
			loadErr = errors.Wrapf(err, "batch entry %q", raw)
			return false
		}

		key := num.String()
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}

		t.Raw = raw
		t.Num = num
		targets = append(targets, t)
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return targets, nil
}
