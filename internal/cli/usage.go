package cli

import (
	"flag"
	"fmt"
	"strings"

	"fqfilter/internal/codec"
	"fqfilter/internal/version"
)

func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – keep (or drop) FASTQ records by identifier\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --in-fastq reads.fq.gz --in-id-list ids.txt [--inverse] > kept.fq\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "      --in-fastq file         Compressed FASTQ (%s) [*]\n", strings.Join(codec.Suffixes(), " "))
		fmt.Fprintln(out, "      --in-id-list file       Identifiers, one per line [*]")

		fmt.Fprintln(out, "\nFiltering:")
		fmt.Fprintf(out, "      --inverse               Keep records whose id is NOT listed [%s]\n", def("inverse"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no record is written [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nDiagnostics (stderr):")
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --log-format string     text | json [%s]\n", def("log-format"))
		fmt.Fprintf(out, "  -q, --quiet                 Only warnings and errors [%s]\n", def("quiet"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
