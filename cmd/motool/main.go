// Command motool queries a GNU MO catalog from the shell, for quick
// inspection of a translation file without writing a program against
// the gettext package.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/justinas/gettext/gettext"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "get":
		runGet(os.Args[2:])
	case "plural":
		runPlural(os.Args[2:])
	case "meta":
		runMeta(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  motool get [-ctx=context] <file.mo> <id>")
	fmt.Fprintln(os.Stderr, "  motool plural [-ctx=context] <file.mo> <id> <plural-id> <n>")
	fmt.Fprintln(os.Stderr, "  motool meta <file.mo>")
}

func runGet(args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	ctx := fs.String("ctx", "", "message context")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 2 {
		usage()
		os.Exit(2)
	}
	cat := mustParse(rest[0])
	if *ctx != "" {
		fmt.Println(cat.PGettext(*ctx, rest[1]))
	} else {
		fmt.Println(cat.Gettext(rest[1]))
	}
}

func runPlural(args []string) {
	fs := flag.NewFlagSet("plural", flag.ExitOnError)
	ctx := fs.String("ctx", "", "message context")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 4 {
		usage()
		os.Exit(2)
	}
	cat := mustParse(rest[0])
	var n int64
	if _, err := fmt.Sscanf(rest[3], "%d", &n); err != nil {
		fmt.Fprintf(os.Stderr, "motool: invalid count %q: %v\n", rest[3], err)
		os.Exit(2)
	}
	if *ctx != "" {
		fmt.Println(cat.NPGettext(*ctx, rest[1], rest[2], n))
	} else {
		fmt.Println(cat.NGettext(rest[1], rest[2], n))
	}
}

func runMeta(args []string) {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	cat := mustParse(args[0])
	meta, ok := cat.Metadata()
	if !ok {
		fmt.Fprintln(os.Stderr, "motool: catalog declares no metadata")
		os.Exit(1)
	}
	for name, value := range meta {
		fmt.Printf("%s: %s\n", name, value)
	}
}

func mustParse(path string) *gettext.Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "motool: %v\n", err)
		os.Exit(1)
	}
	cat, err := gettext.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "motool: %v\n", err)
		os.Exit(1)
	}
	return cat
}
