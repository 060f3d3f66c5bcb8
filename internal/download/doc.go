// Package download implements the download pipeline built on top of the yt-dlp
// command line tool. It builds command lines, runs the subprocess, recovers
// progress percentages from its output, classifies the terminal outcome and
// runs at most one task at a time in the background.
package download
