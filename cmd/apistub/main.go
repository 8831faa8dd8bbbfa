// apistub runs the in-memory maintenance API on its own, for pointing the
// dashboard (or curl) at a backend with no external dependencies.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/JasperRosales/aircraft-system-fe/stub"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	fmt.Printf("maintenance API stub listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, stub.New()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
