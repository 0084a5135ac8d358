package factorlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pfactor/PFactor-core/factor"
)

var logPath = "/tmp/pfactor.log"

// SetPath redirects the result log away from the default location.
func SetPath(path string) {
	if path != "" {
		logPath = path
	}
}

// ResultLogger appends the outcome to the log file while echoing it to
// stdout, so long batch runs survive a closed terminal.
func ResultLogger(res *factor.Result) {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, os.ModePerm)
	if err != nil {
		return
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}(f)

	multiWriter := io.MultiWriter(os.Stdout, f)
	log.SetOutput(multiWriter)
	log.SetFlags(0)

	stamp := time.Now().Format(time.RFC3339)
	if res.Found() {
		log.Print(fmt.Sprintf("%s %s = %s * %s (%s, attempt %d)",
			stamp, res.Num, res.Divisor, res.Cofactor, res.Method, res.AttemptsUsed))
	} else {
		log.Print(fmt.Sprintf("%s %s: no factor found (%s, %d attempts)",
			stamp, res.Num, res.Method, res.AttemptsUsed))
	}
	log.SetOutput(os.Stdout)
}
