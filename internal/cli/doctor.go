package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/mtwalsh/habitgrid/internal/constants"
)

type DoctorCmd struct{}

// Run performs health checks: storage reachability, payload parseability
// and duplicate running instances. Two live processes would race on the
// mirror writes, so that is worth surfacing.
func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running health checks...")
	fmt.Println()

	healthy := true

	if err := ctx.Provider.Load(); err != nil {
		fmt.Printf("✗ storage: %v\n", err)
		healthy = false
	} else {
		fmt.Printf("✓ storage reachable at %s\n", ctx.Provider.ConfigPath())

		payload, ok, err := ctx.Provider.Get(constants.CollectionKey)
		switch {
		case err != nil:
			fmt.Printf("✗ habit collection unreadable: %v\n", err)
			healthy = false
		case !ok:
			fmt.Println("- habit collection absent (run 'habitgrid init')")
		case !strings.HasPrefix(strings.TrimSpace(payload), "["):
			fmt.Println("✗ habit collection payload does not look like a JSON array (restore will start empty)")
			healthy = false
		default:
			fmt.Println("✓ habit collection present")
		}
	}

	others, err := findOtherInstances()
	if err != nil {
		fmt.Printf("- could not check for other running instances: %v\n", err)
	} else if len(others) > 0 {
		fmt.Printf("✗ %d other %s process(es) running (pids %v); concurrent writes may race\n",
			len(others), constants.AppName, others)
		healthy = false
	} else {
		fmt.Println("✓ no other running instances")
	}

	fmt.Println()
	if !healthy {
		return fmt.Errorf("health checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}

func findOtherInstances() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	var pids []int
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := p.Executable()
		if name == constants.AppName || strings.HasPrefix(name, constants.AppName+".") {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}
