package vsock

import (
	"fmt"
	"strconv"

	"vsockpong/pkg/types"
)

// ParsePort validates a decimal port argument. Valid ports are 1-65535;
// vsock itself allows the full 32-bit range, but the harness sticks to
// the conventional port space.
func ParsePort(s string) (uint32, error) {
	p, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &types.Failure{Kind: types.InvalidArgument, Err: err}
	}
	if p == 0 || p > 65535 {
		return 0, &types.Failure{
			Kind: types.InvalidArgument,
			Err:  fmt.Errorf("port %d out of range", p),
		}
	}
	return uint32(p), nil
}
