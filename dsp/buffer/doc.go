// Package buffer pools fixed-length sample buffers so that repeated response
// measurements do not allocate a fresh pair of probe buffers per call.
package buffer
