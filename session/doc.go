// Package session holds one audio clip in memory and applies effects to it.
//
// A Session keeps two mono buffers normalised to [-1, 1]: the original
// as loaded and the current working copy. Effects replace the working copy,
// Reset restores it from the original, and Save writes it as 16-bit PCM.
//
// A Session is not safe for concurrent use.
package session
