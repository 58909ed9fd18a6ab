// SPDX-License-Identifier: MIT

// Package selection restricts a sub-pipeline to a chosen subset of frames.
//
// Every selection follows the same engine: on a successful probability draw
// (or forceApply), compute an ordered frame index list, Gather a deep-copied
// reduced record at those indices, run the selection's own child transforms
// against the reduced record, then Scatter the result back into the original
// arrays at the same indices. A failed draw returns the input untouched —
// the index list is never computed.
//
// Strategies:
//
//	Frames           — caller-supplied index list, bounds-checked per call
//	RandomFrames     — size ~ U[min,max] per call; contiguous span or a
//	                   without-replacement subset of frames
//	RandomWithBorder — window size fixed at construction (inner size drawn
//	                   once, plus 2·border); inner transforms run on the
//	                   interior only, outer transforms on the whole window;
//	                   only the start offset is redrawn per call
//	HighMovement     — window size fixed at construction; frames are scored
//	                   by mean per-joint displacement between consecutive
//	                   frames and the best window (or top-k gaps) is chosen
//
// The size-at-construction asymmetry of RandomWithBorder and HighMovement is
// deliberate: it keeps the inner sub-pipeline shape stable across calls while
// the window position stays random.
package selection
