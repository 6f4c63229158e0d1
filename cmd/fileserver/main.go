package main

import (
	"flag"
	"log"
	"net/http"
	"strconv"
)

func main() {
	dir := flag.String("path", "frames", "the directory of extracted frames to serve")
	port := flag.Int("port", 9090, "the port to listen on")
	flag.Parse()
	log.Printf("serving %s on port %d\n", *dir, *port)
	fs := http.FileServer(http.Dir(*dir))
	log.Fatal(http.ListenAndServe(":"+strconv.Itoa(*port), fs))
}
