// Package testutil provides shared helpers for integration-style tests: a
// thread-safe log buffer, a temp-dir app harness, and a known-good sample
// source document.
package testutil

// SampleSource is a small but complete display-file source: a file-level
// display size, a plain record with a field and a constant, and a window
// record. Column offsets are exact; do not re-indent.
const SampleSource = `00000A*                                     ORDER ENTRY DISPLAY
00000A                                      DSPSIZ(24 80 *DS3)
00000A          R ORDHDR                    CA03(03)
00000A            ORDNO          7S 0O  2 10EDTCDE(Z)
00000A                                  2  2'Order:'
00000A          R ORDWIN                    WINDOW(3 5 10 30)
00000A            NOTE          20A     2  2`
