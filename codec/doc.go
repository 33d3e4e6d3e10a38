// Package codec reads and writes audio files for the effects session.
//
// The [Codec] interface is the only file-format boundary of the module.
// [WAV] decodes integer PCM through github.com/go-audio/wav and 32-bit IEEE
// float files through github.com/mjibson/go-dsp/wav, and always encodes
// 16-bit signed mono PCM.
package codec
