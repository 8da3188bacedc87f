// Command routes prints the registered route table: one line per entry
// with its method, pattern, middleware chain, and the chi patterns it
// expands to.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/JaimeStill/forum/internal/config"
	"github.com/JaimeStill/forum/internal/site"
	"github.com/JaimeStill/forum/pkg/logging"
	pkgroutes "github.com/JaimeStill/forum/pkg/routes"
)

func main() {
	var (
		dir    = flag.String("config", "", "Directory holding config.toml (default: working directory)")
		noFile = flag.Bool("defaults", false, "Ignore config files and use defaults")
	)
	flag.Parse()

	cfg := &config.Config{}
	if !*noFile {
		loaded, err := config.Load(*dir)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("config finalize failed: %v", err)
	}

	st, err := site.New(site.NewRuntime(logging.Discard(), nil, nil), cfg)
	if err != nil {
		log.Fatalf("site init failed: %v", err)
	}

	if err := printTable(os.Stdout, st.Routes); err != nil {
		log.Fatalf("print failed: %v", err)
	}
}

func printTable(out io.Writer, sys pkgroutes.System) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATTERN\tCHAIN\tEXPANDS TO")

	for _, r := range sys.Routes() {
		expanded, err := pkgroutes.Expand(r.Pattern)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Method, r.Pattern, r.Chain, strings.Join(expanded, " "))
	}
	for _, m := range sys.Mounts() {
		fmt.Fprintf(w, "*\t%s\t-\t%s %s/*\n", m.Prefix, m.Prefix, strings.TrimRight(m.Prefix, "/"))
	}

	return w.Flush()
}
