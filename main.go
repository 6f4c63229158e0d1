package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

// Version is the version of the build
var Version = "dev"

var numFramesF int
var outputDirF string
var annotateF bool
var versionF bool

func main() {
	flag.IntVar(&numFramesF, "n", 200, "the number of frames to extract")
	flag.IntVar(&numFramesF, "num_frames", 200, "the number of frames to extract")
	flag.StringVar(&outputDirF, "o", "frames", "the directory to place extracted frames")
	flag.StringVar(&outputDirF, "output_dir", "frames", "the directory to place extracted frames")
	flag.BoolVar(&annotateF, "annotate", false, "stamp each extracted frame with its position in the video")
	flag.BoolVar(&versionF, "v", false, "print the version")
	flag.Parse()

	if versionF {
		fmt.Println(Version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Println("a video file is required")
		flag.Usage()
		os.Exit(1)
	}
	if numFramesF <= 0 {
		fmt.Println("-n must be a positive integer")
		os.Exit(1)
	}

	cfg := Config{
		VideoPath: flag.Arg(0),
		NumFrames: numFramesF,
		OutputDir: outputDirF,
		Annotate:  annotateF,
	}

	log.Println("Start extracting frames from the video")
	extracted, err := Sample(cfg)
	if err != nil {
		log.Fatalf("Error detected: %v\n", err)
	}

	fmt.Printf("Extracted %d frames to '%s'\n", extracted, cfg.OutputDir)
}
