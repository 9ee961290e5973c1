/*
File    : psl/builtin/random.go

RANDOM(lo, hi), grounded on go-mix/std/math.go's rand_int built-in but
using math/rand/v2's top-level functions instead of a package-level
rand.Seed call — go-mix seeds a process-global *rand.Rand in an init(),
which this module avoids since math/rand/v2 is already auto-seeded.
*/
package builtin

import (
	"fmt"
	"math/rand/v2"

	"github.com/pslstudio/psl/value"
)

func init() {
	register("RANDOM", 2, randomFn)
}

func randomFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("RANDOM", 2, len(call.Args))
	}
	lo, ok1 := asInt(call.Args[0])
	hi, ok2 := asInt(call.Args[1])
	if !ok1 || !ok2 {
		return nil, typeError("RANDOM", "two integers", call.Args[0])
	}
	if lo > hi {
		return nil, fmt.Errorf("RANDOM: lower bound %d greater than upper bound %d", lo, hi)
	}
	return &value.Integer{Value: lo + rand.Int64N(hi-lo+1)}, nil
}
