// Package vdfjob runs vdf evaluations as long-lived, cancellable
// background jobs and tracks their progress. Manager hands out a job id
// for every submitted evaluation, runs the squaring loop on its own
// goroutine, and lets callers poll status, read a progress estimate, or
// cancel the job outright.
package vdfjob
