// Package merge concatenates text sources into a single destination file.
//
// Every line of every source is copied in order and terminated with "\n",
// whatever line endings the source used. The accumulated buffer is written to
// the destination once, replacing earlier content, while an advisory lock is
// held on the destination path.
//
// Source failures follow the Policy. BestEffort logs the failure and moves on
// to the next source with whatever lines were already read. Strict aborts
// before the destination is touched.
package merge
