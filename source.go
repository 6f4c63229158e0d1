package main

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// frameSource is a sequential decoder over an ordered sequence of frames.
// Read yields the next frame in order; a false flag means the stream is
// exhausted. A mid-stream decode failure looks the same as end of stream.
type frameSource interface {
	TotalFrames() int
	Read() (image.Image, bool)
	Close() error
}

type unopenableSourceError struct {
	path string
	err  error
}

func (e *unopenableSourceError) Error() string {
	return fmt.Sprintf("cannot open video %q: %v", e.path, e.err)
}

func (e *unopenableSourceError) Unwrap() error { return e.err }

type unknownLengthError struct {
	total int
}

func (e *unknownLengthError) Error() string {
	return fmt.Sprintf("could not determine total frame count (decoder reported %d)", e.total)
}

// videoSource decodes a video file frame by frame.
type videoSource struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
}

func openVideoSource(path string) (*videoSource, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, &unopenableSourceError{path, err}
	}
	return &videoSource{capture: capture, mat: gocv.NewMat()}, nil
}

func (s *videoSource) TotalFrames() int {
	return int(s.capture.Get(gocv.VideoCaptureFrameCount))
}

func (s *videoSource) Read() (image.Image, bool) {
	if !s.capture.Read(&s.mat) || s.mat.Empty() {
		return nil, false
	}
	img, err := s.mat.ToImage()
	if err != nil {
		return nil, false
	}
	return img, true
}

func (s *videoSource) Close() error {
	s.mat.Close()
	return s.capture.Close()
}
