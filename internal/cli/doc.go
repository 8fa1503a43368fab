/*
Package cli implements the commands of the folder tool.

folder folds whitespace separated values, taken from the command line or
from stdin, into a single result:

	folder sum 1 2 3 4 5          # 15
	folder sum --int < numbers    # integer sum of all numbers in a file
	folder max 3 17 4             # 17
	folder join --sep , a b c     # a,b,c

Flags may also be set from the environment, using the prefix FOLDER
(FOLDER_DEBUG, FOLDER_NO_COLOR, FOLDER_SEP, FOLDER_INT).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package cli

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folderer'
func tracer() tracing.Trace {
	return tracing.Select("folderer")
}
