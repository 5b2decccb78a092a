// Package audiofile bridges audio files and the in-memory buffers the
// dynamics transform works on. It plays the host's part: decoding a whole
// file into interleaved float samples and writing rendered buffers back
// out as PCM WAV.
//
// Supported inputs: WAV (integer PCM), MP3 and Ogg Vorbis. Output is
// always integer PCM WAV.
package audiofile
