// Command schedcore reads one schedule request from stdin and writes one
// response to stdout.
package main

import (
	"log"
	"os"

	"github.com/lanedorian/schedcore/wire"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("schedcore: ")
	code := wire.Serve(os.Stdin, os.Stdout)
	if code != 0 {
		log.Println("request failed; see response on stdout")
	}
	os.Exit(code)
}
