package main

import "log"

// Config carries the settings for one sampling run.
type Config struct {
	VideoPath string
	NumFrames int
	OutputDir string
	Annotate  bool
}

// targetIndices computes n frame positions evenly spaced over a video of
// total frames: floor(i*total/n) for i in 0..n-1. The result is
// non-decreasing and every value lies in [0, total). When n exceeds total the
// list contains duplicates.
func targetIndices(total, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i * total / n
	}
	return idx
}

// Sample extracts cfg.NumFrames evenly spaced frames from cfg.VideoPath into
// cfg.OutputDir and returns how many frames were written. The output
// directory is created up front so a write can never fail on a missing path.
func Sample(cfg Config) (int, error) {
	sink, err := newPNGSink(cfg.OutputDir, cfg.Annotate)
	if err != nil {
		return 0, err
	}

	src, err := openVideoSource(cfg.VideoPath)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	return sample(src, sink, cfg.NumFrames)
}

// sample performs a single forward scan over src. Frames are decoded in
// order; whenever the running frame counter equals the active target index
// the frame is written, named by its position in the target list. The scan
// ends when the stream is exhausted or every target has been consumed.
//
// Targets are consumed strictly in order and the cursor never moves
// backwards, so a duplicate target equal to an index the cursor has already
// passed is never satisfied; in that case the returned count is smaller than
// the number of targets.
func sample(src frameSource, sink frameSink, numFrames int) (int, error) {
	total := src.TotalFrames()
	if total <= 0 {
		return 0, &unknownLengthError{total}
	}

	targets := targetIndices(total, numFrames)

	extracted := 0
	current := 0
	for target := 0; target < len(targets); {
		img, ok := src.Read()
		if !ok {
			break
		}
		if current == targets[target] {
			if err := sink.Write(target, current, img); err != nil {
				return extracted, err
			}
			extracted++
			target++
			if extracted == 1 || extracted%50 == 0 {
				log.Printf("Wrote frame %d of %d\n", extracted, len(targets))
			}
		}
		current++
	}
	return extracted, nil
}
