// Command subber pairs media files with caption files in a directory
// tree, reports exact, close, and unmatched results, and offers rename,
// move, and audio-extraction follow-ups.
package main
